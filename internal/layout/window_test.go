package layout

import (
	"testing"

	"github.com/jmvillaverde/horario/internal/timetable"
)

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name      string
		entries   [][2]string // start, end pairs
		wantStart string
		wantEnd   string
	}{
		{
			name:      "empty list yields default window",
			entries:   nil,
			wantStart: "08:00",
			wantEnd:   "18:30",
		},
		{
			name:      "already aligned",
			entries:   [][2]string{{"09:00", "12:00"}},
			wantStart: "09:00",
			wantEnd:   "12:00",
		},
		{
			name:      "floors start to half hour",
			entries:   [][2]string{{"09:10", "10:00"}},
			wantStart: "09:00",
			wantEnd:   "10:00",
		},
		{
			name:      "ceils end to half hour",
			entries:   [][2]string{{"09:00", "10:05"}},
			wantStart: "09:00",
			wantEnd:   "10:30",
		},
		{
			name:      "floors at 45 past",
			entries:   [][2]string{{"08:45", "09:45"}},
			wantStart: "08:30",
			wantEnd:   "10:00",
		},
		{
			name:      "spans all entries",
			entries:   [][2]string{{"10:00", "11:00"}, {"07:15", "08:00"}, {"13:00", "19:40"}},
			wantStart: "07:00",
			wantEnd:   "20:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []*timetable.Entry
			for i, pair := range tt.entries {
				entries = append(entries, mustEntry(t, int64(i+1), 0, pair[0], pair[1], "CS101"))
			}

			w := ResolveWindow(entries)
			if got := w.Start.Clock(); got != tt.wantStart {
				t.Errorf("window start = %s, want %s", got, tt.wantStart)
			}
			if got := w.End.Clock(); got != tt.wantEnd {
				t.Errorf("window end = %s, want %s", got, tt.wantEnd)
			}
			if w.Start%SlotMinutes != 0 || w.End%SlotMinutes != 0 {
				t.Errorf("window %v-%v not half-hour aligned", w.Start, w.End)
			}

			// The window must cover every entry.
			for _, e := range entries {
				if e.Start < w.Start || e.End > w.End {
					t.Errorf("entry %s-%s falls outside window %s-%s",
						e.Start.Clock(), e.End.Clock(), w.Start.Clock(), w.End.Clock())
				}
			}
		})
	}
}
