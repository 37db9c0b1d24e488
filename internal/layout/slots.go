package layout

import (
	"iter"

	"github.com/jmvillaverde/horario/internal/timetable"
)

// Slot is one half-hour tick of the window, used to label grid rows.
type Slot struct {
	Label  string            // "09:00"
	Offset timetable.Minutes // minutes from the window start
}

// SlotCount returns the number of ticks from Start to End inclusive.
func (w Window) SlotCount() int {
	return int(w.End-w.Start)/SlotMinutes + 1
}

// Slots returns the window's ticks in order as a restartable sequence.
// Iterating twice yields the same slots.
func (w Window) Slots() iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for t := w.Start; t <= w.End; t += SlotMinutes {
			if !yield(Slot{Label: t.Clock(), Offset: t - w.Start}) {
				return
			}
		}
	}
}
