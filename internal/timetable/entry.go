// Package timetable defines the core domain types for horario.
package timetable

import (
	"errors"
	"fmt"
)

// DaysPerWeek bounds the day_of_week values the service may return.
// Display-side weekday limits narrow the view, never ingestion.
const DaysPerWeek = 7

// Validation errors surfaced at the ingestion boundary. The layout engine
// never sees an entry that failed one of these checks.
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidInterval   = errors.New("end time must be after start time")
	ErrInvalidWeekday    = errors.New("day_of_week out of range")
)

// Course identifies a taught course.
type Course struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Teacher identifies the person teaching an entry.
type Teacher struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Room identifies the room an entry takes place in.
type Room struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Section identifies the student group attending an entry.
type Section struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Entry is one scheduled class occurrence: a course taught by a teacher to
// a section in a room, on a weekday between two wall-clock times.
// Entries are an immutable snapshot; nothing downstream mutates them.
type Entry struct {
	ID      int64   `json:"id"`
	Day     int     `json:"day_of_week"` // 0-based weekday index
	Start   Minutes `json:"start"`
	End     Minutes `json:"end"`
	Course  Course  `json:"course"`
	Teacher Teacher `json:"teacher"`
	Room    Room    `json:"room"`
	Section Section `json:"section"`
}

// NewEntry validates raw wire values and builds an Entry.
// start and end must be "HH:MM" strings with start before end, and day must
// be within [0, days).
func NewEntry(id int64, day int, start, end string, days int, course Course, teacher Teacher, room Room, section Section) (*Entry, error) {
	if day < 0 || day >= days {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, day)
	}

	s, err := ParseClock(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	e, err := ParseClock(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	if e <= s {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}

	return &Entry{
		ID:      id,
		Day:     day,
		Start:   s,
		End:     e,
		Course:  course,
		Teacher: teacher,
		Room:    room,
		Section: section,
	}, nil
}

// Duration returns the entry length in minutes.
func (e *Entry) Duration() int {
	return int(e.End - e.Start)
}

// OverlapsWith returns true if both entries share a weekday and their time
// ranges intersect.
func (e *Entry) OverlapsWith(other *Entry) bool {
	if other == nil {
		return false
	}
	if e.Day != other.Day {
		return false
	}
	return Overlaps(e.Start, e.End, other.Start, other.End)
}
