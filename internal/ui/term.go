package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Warnings: yellow so they stand out without being errors
	colorWarn = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// coursePalette is the cyclic color palette for course codes. Its length is
// the palette size fed to the layout engine, so color indexes always land on
// a real color.
var coursePalette = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
	color.New(color.FgRed),
	color.New(color.FgHiCyan),
	color.New(color.FgHiMagenta),
}

// PaletteSize returns the number of distinct course colors.
func PaletteSize() int {
	return len(coursePalette)
}

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatCourse formats text in the palette color assigned to the index.
func formatCourse(idx int, s string) string {
	if idx < 0 || idx >= len(coursePalette) {
		return s
	}
	return coursePalette[idx].Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatWarn formats text as a warning.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
