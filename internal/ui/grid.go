package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jmvillaverde/horario/internal/layout"
)

// weekdayNames are the column headers, 0-based from Monday.
var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayName returns the short name for a 0-based weekday index.
func WeekdayName(day int) string {
	if day < 0 || day >= len(weekdayNames) {
		return "?"
	}
	return weekdayNames[day]
}

// GridOptions configures the plain-text grid rendering.
type GridOptions struct {
	Days  int     // weekday columns to draw
	Zoom  float64 // scales the day-column width
	Color bool    // colorize course codes with the palette
}

// gridColWidth derives a terminal column width from the zoom metrics.
// Roughly 8 pixels per character cell.
func gridColWidth(zoom float64) int {
	w := int(layout.Scale(zoom).MinColumnWidth / 8)
	if w < 6 {
		return 6
	}
	return w
}

// RenderGrid renders a computed layout as a text grid: one row per
// half-hour, one column per weekday, overlapping entries side by side
// within their day column. Continuation rows are drawn as "·".
func RenderGrid(l *layout.Layout, opts GridOptions) string {
	colWidth := gridColWidth(opts.Zoom)

	var labels []string
	for slot := range l.Window.Slots() {
		labels = append(labels, slot.Label)
	}
	rowCount := len(labels) - 1 // rows sit between ticks

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", 6))
	for day := 0; day < opts.Days; day++ {
		fmt.Fprintf(&b, "%-*s", colWidth+1, WeekdayName(day))
	}
	b.WriteString("\n")

	for row := 1; row <= rowCount; row++ {
		fmt.Fprintf(&b, "%s ", labels[row-1])
		for day := 0; day < opts.Days; day++ {
			b.WriteString(renderCell(l, day, row, colWidth, opts.Color))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell renders one day cell of one row, padded to width. Occupied
// tracks show the course code on the entry's first row and "·" afterwards.
func renderCell(l *layout.Layout, day, row, width int, useColor bool) string {
	if day >= len(l.Tracks) {
		return strings.Repeat(" ", width)
	}

	type part struct {
		text string
		code string
	}
	var parts []part
	for track := 0; track < l.Tracks[day]; track++ {
		e := l.EntryAt(day, track, row)
		if e == nil {
			continue
		}
		text := "·"
		if l.Positions[e.ID].StartRow == row {
			text = e.Course.Code
		}
		parts = append(parts, part{text: text, code: e.Course.Code})
	}

	if len(parts) == 0 {
		return strings.Repeat(" ", width)
	}

	plain := make([]string, len(parts))
	for i, p := range parts {
		plain[i] = p.text
	}
	joined := strings.Join(plain, " ")

	// Pad and truncate by display width, not bytes: the continuation marker
	// is a multi-byte rune and byte counts would skew every column after it.
	visible := ansi.StringWidth(joined)

	// A cell too narrow for its content is truncated without color so the
	// columns stay aligned.
	if visible > width {
		return ansi.Truncate(joined, width, "")
	}

	if !useColor {
		return joined + strings.Repeat(" ", width-visible)
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(formatCourse(l.Colors[p.code], p.text))
	}
	b.WriteString(strings.Repeat(" ", width-visible))
	return b.String()
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
