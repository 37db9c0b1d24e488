package layout

import "github.com/jmvillaverde/horario/internal/timetable"

// Layout is the full result of one render pass over an entry snapshot.
type Layout struct {
	Window    Window
	Days      [][]Group          // overlap groups per weekday
	Positions map[int64]Position // grid position per entry ID
	Tracks    []int              // parallel track count per weekday
	Colors    ColorTable
}

// Compute runs the whole pipeline: resolve the window, group and place each
// weekday, and assign course colors in day-major traversal order (day, then
// group, then entry order within the group). The result depends only on the
// arguments; calling twice with the same snapshot yields an identical
// layout. Entries whose weekday falls outside [0, days) are ignored.
func Compute(entries []*timetable.Entry, days, paletteSize int) *Layout {
	l := &Layout{
		Window:    ResolveWindow(entries),
		Days:      make([][]Group, days),
		Positions: make(map[int64]Position, len(entries)),
		Tracks:    make([]int, days),
	}

	perDay := make([][]*timetable.Entry, days)
	for _, e := range entries {
		if e.Day < 0 || e.Day >= days {
			continue
		}
		perDay[e.Day] = append(perDay[e.Day], e)
	}

	order := make([]*timetable.Entry, 0, len(entries))
	for day, dayEntries := range perDay {
		groups := GroupDay(dayEntries)
		l.Days[day] = groups
		l.Tracks[day] = TrackCount(groups)
		for id, pos := range MapDay(l.Window, day, groups) {
			l.Positions[id] = pos
		}
		for _, g := range groups {
			order = append(order, g.Entries...)
		}
	}

	l.Colors = AssignColors(order, paletteSize)
	return l
}

// EntryAt returns the entry occupying the given day, track and row, or nil.
// Row follows the 1-indexed position convention.
func (l *Layout) EntryAt(day, track, row int) *timetable.Entry {
	if day < 0 || day >= len(l.Days) {
		return nil
	}
	for _, g := range l.Days[day] {
		for _, e := range g.Entries {
			pos := l.Positions[e.ID]
			if pos.Track == track && pos.StartRow <= row && row < pos.EndRow {
				return e
			}
		}
	}
	return nil
}
