package layout

// Position locates one entry on the grid.
// Rows are 1-indexed offsets from the window start; StartRow is the first
// half-hour row the entry touches and EndRow the row just past its last.
// Track is the entry's 0-based column within its day.
type Position struct {
	Day      int
	Track    int
	StartRow int
	EndRow   int
}

// MapDay converts a day's overlap groups into grid positions, one per
// entry. Tracks follow each entry's order within its group, so entries of
// the same group never share a column.
func MapDay(w Window, day int, groups []Group) map[int64]Position {
	positions := make(map[int64]Position)
	for _, g := range groups {
		for track, e := range g.Entries {
			positions[e.ID] = Position{
				Day:      day,
				Track:    track,
				StartRow: int(e.Start-w.Start)/SlotMinutes + 1,
				EndRow:   ceilDiv(int(e.End-w.Start), SlotMinutes) + 1,
			}
		}
	}
	return positions
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
