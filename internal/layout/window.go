// Package layout computes the weekly grid geometry for timetable entries:
// the visible time window, half-hour row ticks, per-day overlap groups and
// track assignments, per-entry grid positions, course colors, and zoom
// metrics. Every function is pure; the engine keeps no state between render
// passes and is safe to re-run from scratch on every change.
package layout

import "github.com/jmvillaverde/horario/internal/timetable"

// SlotMinutes is the grid resolution: one row per half hour.
const SlotMinutes = 30

// Window shown when there are no entries to derive one from.
const (
	defaultWindowStart = timetable.Minutes(8 * 60)     // 08:00
	defaultWindowEnd   = timetable.Minutes(18*60 + 30) // 18:30
)

// Window is the visible time range of the grid. Both bounds are aligned to
// the half hour and Start never exceeds End.
type Window struct {
	Start timetable.Minutes
	End   timetable.Minutes
}

// ResolveWindow derives the window covering every entry in a single scan,
// flooring the earliest start and ceiling the latest end to the half hour.
// An empty entry list yields the default 08:00-18:30 window.
func ResolveWindow(entries []*timetable.Entry) Window {
	if len(entries) == 0 {
		return Window{Start: defaultWindowStart, End: defaultWindowEnd}
	}

	minStart := entries[0].Start
	maxEnd := entries[0].End
	for _, e := range entries[1:] {
		if e.Start < minStart {
			minStart = e.Start
		}
		if e.End > maxEnd {
			maxEnd = e.End
		}
	}

	return Window{Start: floorSlot(minStart), End: ceilSlot(maxEnd)}
}

func floorSlot(m timetable.Minutes) timetable.Minutes {
	return m - m%SlotMinutes
}

func ceilSlot(m timetable.Minutes) timetable.Minutes {
	if rem := m % SlotMinutes; rem != 0 {
		return m + SlotMinutes - rem
	}
	return m
}
