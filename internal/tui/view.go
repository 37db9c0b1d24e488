package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/jmvillaverde/horario/internal/layout"
)

// weekdayNames are the column headers, 0-based from Monday.
var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func weekdayName(day int) string {
	if day < 0 || day >= len(weekdayNames) {
		return "?"
	}
	return weekdayNames[day]
}

// colWidth derives the day-column width in cells from the zoom metrics.
func colWidth(zoom float64) int {
	w := int(layout.Scale(zoom).MinColumnWidth / 8)
	if w < 6 {
		return 6
	}
	return w
}

// View renders the whole screen. The layout is recomputed from the snapshot
// on every pass; it is pure, so the result only changes when the snapshot,
// day count or palette do.
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)),
			m.styles.Help.Render("r retry  q quit"))
	}

	if m.loading && m.snapshot == nil {
		return fmt.Sprintf("\n  %s %s\n", m.spinner.View(),
			m.styles.Status.Render(fmt.Sprintf("Fetching timetable %s...", m.id)))
	}

	l := layout.Compute(m.snapshot.Entries, m.config.UI.Days, len(m.styles.Course))

	var b strings.Builder

	b.WriteString("  " + m.styles.Title.Render(m.title()))
	b.WriteString("  " + m.styles.Subtitle.Render(m.zoomLabel()))
	if m.fromCache {
		b.WriteString("  " + m.styles.Warning.Render("(cached copy, service unreachable)"))
	}
	b.WriteString("\n")
	b.WriteString("  " + m.styles.Subtitle.Render(fmt.Sprintf("fetched %s, %d classes",
		humanize.Time(m.snapshot.FetchedAt), len(m.snapshot.Entries))))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid(l))
	b.WriteString("\n")
	b.WriteString(m.renderFocusedDay(l))
	b.WriteString("\n")
	b.WriteString("  " + m.styles.Help.Render("←/→ day  +/- zoom  r refresh  q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderGrid draws the weekly grid: one row per half-hour, one column per
// weekday, entries placed at their layout positions.
func (m Model) renderGrid(l *layout.Layout) string {
	width := colWidth(m.zoom)
	days := m.config.UI.Days

	var labels []string
	for slot := range l.Window.Slots() {
		labels = append(labels, slot.Label)
	}
	rowCount := len(labels) - 1

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", 8))
	for day := 0; day < days; day++ {
		name := fmt.Sprintf("%-*s", width+1, weekdayName(day))
		if day == m.focusDay {
			b.WriteString(m.styles.DayHeaderFocus.Render(name))
		} else {
			b.WriteString(m.styles.DayHeader.Render(name))
		}
	}
	b.WriteString("\n")

	for row := 1; row <= rowCount; row++ {
		b.WriteString("  " + m.styles.TimeColumn.Render(labels[row-1]) + " ")
		for day := 0; day < days; day++ {
			b.WriteString(m.renderCell(l, day, row, width))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell draws one day cell of one row, padded to width. Occupied
// tracks show the course code on the entry's first row and "·" afterwards.
func (m Model) renderCell(l *layout.Layout, day, row, width int) string {
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

	// Measure display width, not bytes: the continuation marker is a
	// multi-byte rune and byte counts would skew every column after it.
	visible := ansi.StringWidth(joined)

	if visible > width {
		// Too narrow for styling; truncate the plain text to keep columns
		// aligned.
		return ansi.Truncate(joined, width, "")
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.styles.CourseStyle(l.Colors[p.code]).Render(p.text))
	}
	b.WriteString(strings.Repeat(" ", width-visible))
	return b.String()
}

// renderFocusedDay lists the focused day's classes with full details.
func (m Model) renderFocusedDay(l *layout.Layout) string {
	entries := m.focusedEntries(l)

	var b strings.Builder
	b.WriteString("  " + m.styles.DayHeaderFocus.Render(weekdayName(m.focusDay)) + "\n")

	if len(entries) == 0 {
		b.WriteString("  " + m.styles.Subtitle.Render("no classes") + "\n")
		return b.String()
	}

	for _, e := range entries {
		code := m.styles.CourseStyle(l.Colors[e.Course.Code]).Render(e.Course.Code)
		b.WriteString(fmt.Sprintf("  %s-%s  %s  %s\n",
			e.Start.Clock(), e.End.Clock(), code,
			m.styles.Subtitle.Render(fmt.Sprintf("%s · %s · %s · %s",
				e.Course.Name, e.Teacher.Name, e.Room.Name, e.Section.Name))))
	}

	return b.String()
}
