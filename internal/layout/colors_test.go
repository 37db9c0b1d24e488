package layout

import (
	"testing"

	"github.com/jmvillaverde/horario/internal/timetable"
)

func TestAssignColorsFirstSeenOrder(t *testing.T) {
	entries := []*timetable.Entry{
		mustEntry(t, 1, 0, "09:00", "10:00", "CS101"),
		mustEntry(t, 2, 0, "10:00", "11:00", "CS101"),
		mustEntry(t, 3, 0, "11:00", "12:00", "MA201"),
	}

	table := AssignColors(entries, 8)

	if got := table["CS101"]; got != 0 {
		t.Errorf("CS101 color = %d, want 0", got)
	}
	if got := table["MA201"]; got != 1 {
		t.Errorf("MA201 color = %d, want 1", got)
	}
	if len(table) != 2 {
		t.Errorf("table has %d codes, want 2", len(table))
	}
}

func TestAssignColorsCyclesPalette(t *testing.T) {
	codes := []string{"CS101", "MA201", "PH301", "EN110", "BI220"}
	var entries []*timetable.Entry
	for i, code := range codes {
		entries = append(entries, mustEntry(t, int64(i+1), 0, "09:00", "10:00", code))
	}

	table := AssignColors(entries, 3)

	want := map[string]int{"CS101": 0, "MA201": 1, "PH301": 2, "EN110": 0, "BI220": 1}
	for code, idx := range want {
		if table[code] != idx {
			t.Errorf("%s color = %d, want %d", code, table[code], idx)
		}
	}
}

func TestAssignColorsDeterministic(t *testing.T) {
	entries := []*timetable.Entry{
		mustEntry(t, 1, 0, "09:00", "10:00", "CS101"),
		mustEntry(t, 2, 0, "10:00", "11:00", "MA201"),
		mustEntry(t, 3, 0, "11:00", "12:00", "CS101"),
	}

	first := AssignColors(entries, 8)
	second := AssignColors(entries, 8)

	if len(first) != len(second) {
		t.Fatalf("table sizes differ: %d vs %d", len(first), len(second))
	}
	for code, idx := range first {
		if second[code] != idx {
			t.Errorf("%s color changed between calls: %d vs %d", code, idx, second[code])
		}
	}
}

func TestAssignColorsEmptyPalette(t *testing.T) {
	entries := []*timetable.Entry{
		mustEntry(t, 1, 0, "09:00", "10:00", "CS101"),
	}

	if table := AssignColors(entries, 0); len(table) != 0 {
		t.Errorf("zero-size palette assigned %d colors, want none", len(table))
	}
}
