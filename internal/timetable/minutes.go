package timetable

import "fmt"

// Minutes is a wall-clock time expressed as minutes since midnight.
// All engine arithmetic happens on this type; "HH:MM" strings exist only
// at the wire and display boundaries.
type Minutes int

// ParseClock parses a strict "HH:MM" string into Minutes.
func ParseClock(s string) (Minutes, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return Minutes(hours*60 + mins), nil
}

// Clock formats the value back to "HH:MM" for display.
func (m Minutes) Clock() string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps returns true if the half-open ranges [s1,e1) and [s2,e2) intersect.
func Overlaps(s1, e1, s2, e2 Minutes) bool {
	return s1 < e2 && s2 < e1
}
