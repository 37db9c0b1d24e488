package timetable

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Minutes
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "9am", input: "09:00", want: 540},
		{name: "with minutes", input: "09:30", want: 570},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "no separator", input: "0900 ", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "trailing garbage", input: "09:001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) = %d, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Errorf("ParseClock(%q) error = %v, want ErrInvalidTimeFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		name  string
		input Minutes
		want  string
	}{
		{name: "midnight", input: 0, want: "00:00"},
		{name: "9am", input: 540, want: "09:00"},
		{name: "with minutes", input: 570, want: "09:30"},
		{name: "negative clamps to zero", input: -10, want: "00:00"},
		{name: "over 24h clamps", input: 1500, want: "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Clock(); got != tt.want {
				t.Errorf("Minutes(%d).Clock() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 Minutes
		want           bool
	}{
		{name: "adjacent ranges do not overlap", s1: 540, e1: 600, s2: 600, e2: 660, want: false},
		{name: "gap between", s1: 540, e1: 600, s2: 660, e2: 720, want: false},
		{name: "partial overlap", s1: 540, e1: 630, s2: 600, e2: 660, want: true},
		{name: "identical ranges", s1: 540, e1: 660, s2: 540, e2: 660, want: true},
		{name: "contained range", s1: 540, e1: 720, s2: 600, e2: 660, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
		})
	}
}
