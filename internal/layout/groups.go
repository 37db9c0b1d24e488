package layout

import (
	"slices"

	"github.com/jmvillaverde/horario/internal/timetable"
)

// Group is a chain of same-day entries linked by time overlap. Membership
// is transitive: an entry joins when it overlaps ANY current member, so two
// members need not overlap each other directly. A group's size can
// therefore exceed the minimum number of parallel tracks the entries
// strictly require; renderers rely on this exact grouping, so it must not
// be swapped for tighter interval packing.
type Group struct {
	Entries []*timetable.Entry // ascending by start, ties in input order
	Start   timetable.Minutes  // earliest member start
	End     timetable.Minutes  // latest member end
}

// Size returns the number of entries in the group.
func (g *Group) Size() int {
	return len(g.Entries)
}

// GroupDay clusters the entries of a single weekday into overlap groups.
// Every input entry lands in exactly one group, and groups come out ordered
// by start time.
func GroupDay(entries []*timetable.Entry) []Group {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]*timetable.Entry, len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b *timetable.Entry) int {
		return int(a.Start - b.Start)
	})

	var groups []Group
	current := newGroup(sorted[0])
	for _, e := range sorted[1:] {
		if current.overlapsAny(e) {
			current.add(e)
		} else {
			groups = append(groups, current)
			current = newGroup(e)
		}
	}
	return append(groups, current)
}

// TrackCount returns the number of parallel display tracks a day needs:
// the size of its largest group, and at least one.
func TrackCount(groups []Group) int {
	tracks := 1
	for _, g := range groups {
		if g.Size() > tracks {
			tracks = g.Size()
		}
	}
	return tracks
}

func newGroup(e *timetable.Entry) Group {
	return Group{Entries: []*timetable.Entry{e}, Start: e.Start, End: e.End}
}

func (g *Group) overlapsAny(e *timetable.Entry) bool {
	for _, m := range g.Entries {
		if timetable.Overlaps(e.Start, e.End, m.Start, m.End) {
			return true
		}
	}
	return false
}

// add appends an entry. Entries arrive sorted by start, so only the end
// can extend the span.
func (g *Group) add(e *timetable.Entry) {
	g.Entries = append(g.Entries, e)
	if e.End > g.End {
		g.End = e.End
	}
}
