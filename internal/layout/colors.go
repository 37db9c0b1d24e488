package layout

import "github.com/jmvillaverde/horario/internal/timetable"

// ColorTable maps a course code to a palette index. Indexes are assigned in
// first-seen order and cycle once the palette is exhausted.
type ColorTable map[string]int

// AssignColors walks the entries in traversal order and gives each new
// course code the next palette slot; repeat codes keep their slot. The
// table is a pure function of the input order and is returned to the
// caller rather than cached anywhere, so two passes over the same entries
// always produce the same mapping.
func AssignColors(entries []*timetable.Entry, paletteSize int) ColorTable {
	table := make(ColorTable)
	if paletteSize <= 0 {
		return table
	}

	assigned := 0
	for _, e := range entries {
		if _, ok := table[e.Course.Code]; ok {
			continue
		}
		table[e.Course.Code] = assigned % paletteSize
		assigned++
	}
	return table
}
