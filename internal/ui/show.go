package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmvillaverde/horario/internal/layout"
)

func (a *App) showCmd() *cobra.Command {
	var (
		cachedOnly bool
		copyGrid   bool
		noColor    bool
		zoom       float64
	)

	cmd := &cobra.Command{
		Use:   "show <timetable-id>",
		Short: "Print a timetable as a weekly grid",
		Long: `Fetch a timetable and print it as a weekly grid, one column per
weekday and one row per half-hour. Overlapping classes share a day
column side by side.

Use --cached to read the local copy without contacting the service.`,
		Example: `  horario show tt-42
  horario show tt-42 --cached
  horario show tt-42 --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if zoom == 0 {
				zoom = a.config.UI.Zoom
			}
			zoom = layout.ClampZoom(zoom)

			ctx := context.Background()
			snap, err := a.loadSnapshot(ctx, args[0], cachedOnly)
			if err != nil {
				return err
			}

			l := layout.Compute(snap.Entries, a.config.UI.Days, PaletteSize())
			grid := RenderGrid(l, GridOptions{
				Days:  a.config.UI.Days,
				Zoom:  zoom,
				Color: !noColor,
			})

			title := snap.Name
			if title == "" {
				title = snap.ID
			}
			if w := 6 + a.config.UI.Days*(gridColWidth(zoom)+1); w > termWidth() {
				fmt.Println(formatWarn("terminal is narrower than the grid, try a lower --zoom"))
			}

			fmt.Printf("=== %s ===\n", formatHeader(title))
			fmt.Printf("%s\n\n", formatMuted(fmt.Sprintf("fetched %s, %d classes",
				humanize.Time(snap.FetchedAt), len(snap.Entries))))
			fmt.Print(grid)

			if copyGrid {
				if err := clipboard.WriteAll(ansi.Strip(grid)); err != nil {
					return fmt.Errorf("copying grid: %w", err)
				}
				fmt.Println(formatStats("\nGrid copied to clipboard."))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&cachedOnly, "cached", false, "Use the local copy, do not contact the service")
	cmd.Flags().BoolVar(&copyGrid, "copy", false, "Copy the grid to the clipboard (without colors)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Grid zoom factor, 0.1-2.0 (defaults to config)")

	return cmd
}
