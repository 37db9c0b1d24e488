package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format string
		view   string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export <timetable-id>",
		Short: "Download a timetable export",
		Long: `Download the timetable from the service in a document format. The view
selects whose schedule the export is built around: the full master
grid, or one schedule per teacher, room or section.`,
		Example: `  horario export tt-42
  horario export tt-42 --format=csv --view=teacher
  horario export tt-42 --out=/tmp/semester1.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id := args[0]
			if format == "" {
				format = a.config.Export.Format
			}

			blob, err := a.client.Export(context.Background(), id, format, view)
			if err != nil {
				return fmt.Errorf("exporting timetable: %w", err)
			}

			path := out
			if path == "" {
				path = filepath.Join(a.config.Export.Dir, exportFileName(id, view, format))
			}

			if err := os.WriteFile(path, blob, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Printf("Exported %s to %s\n", formatStats(id), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Export format: xlsx or csv (defaults to config)")
	cmd.Flags().StringVar(&view, "view", "master", "Export view: master, teacher, room or section")
	cmd.Flags().StringVar(&out, "out", "", "Write to this path instead of the export directory")

	return cmd
}

// exportFileName builds the default file name for an export download.
func exportFileName(id, view, format string) string {
	return fmt.Sprintf("%s-%s.%s", id, view, format)
}
