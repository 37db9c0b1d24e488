// Package tui provides the interactive timetable view for horario.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	DayHeader      lipgloss.Style
	DayHeaderFocus lipgloss.Style
	TimeColumn     lipgloss.Style
	Status         lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Help           lipgloss.Style

	// Course is the cyclic cell palette; its length is the palette size
	// handed to the layout engine.
	Course []lipgloss.Style
}

// NewStyles builds the style set, picking palette shades for the detected
// terminal background.
func NewStyles() Styles {
	dark := termenv.HasDarkBackground()

	muted := lipgloss.Color("8")
	if !dark {
		muted = lipgloss.Color("7")
	}

	palette := []string{"14", "10", "11", "13", "12", "9", "6", "5"}
	if !dark {
		palette = []string{"6", "2", "3", "5", "4", "1", "14", "13"}
	}

	course := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		course[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		Title:          lipgloss.NewStyle().Bold(true),
		Subtitle:       lipgloss.NewStyle().Foreground(muted),
		DayHeader:      lipgloss.NewStyle().Bold(true).Foreground(muted),
		DayHeaderFocus: lipgloss.NewStyle().Bold(true).Underline(true),
		TimeColumn:     lipgloss.NewStyle().Foreground(muted),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:           lipgloss.NewStyle().Foreground(muted),
		Course:         course,
	}
}

// CourseStyle returns the style for a palette index.
func (s Styles) CourseStyle(idx int) lipgloss.Style {
	if idx < 0 || idx >= len(s.Course) {
		return lipgloss.NewStyle()
	}
	return s.Course[idx]
}
