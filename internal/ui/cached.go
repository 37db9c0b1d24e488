package ui

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmvillaverde/horario/internal/db"
)

func (a *App) cachedCmd() *cobra.Command {
	var remove string

	cmd := &cobra.Command{
		Use:   "cached",
		Short: "List locally cached timetables",
		Long: `List the timetables kept in the local cache, most recent fetch first.
These remain viewable with 'horario show --cached' when the service
is down.`,
		Example: `  horario cached
  horario cached --rm tt-42`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			if remove != "" {
				sqlite, ok := a.cache.(*db.SQLite)
				if !ok {
					return fmt.Errorf("cache does not support removal")
				}
				if err := sqlite.DeleteSnapshot(ctx, remove); err != nil {
					return fmt.Errorf("removing cached timetable: %w", err)
				}
				fmt.Printf("Removed %s from the cache\n", formatStats(remove))
				return nil
			}

			snaps, err := a.cache.ListSnapshots(ctx)
			if err != nil {
				return fmt.Errorf("listing cached timetables: %w", err)
			}

			if len(snaps) == 0 {
				fmt.Println("Nothing cached yet.")
				return nil
			}

			for _, snap := range snaps {
				name := snap.Name
				if name == "" {
					name = formatMuted("(unnamed)")
				}
				fmt.Printf("  %-12s %s  %s\n",
					formatStats(snap.ID), name,
					formatMuted("fetched "+humanize.Time(snap.FetchedAt)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&remove, "rm", "", "Remove this timetable from the cache")
	return cmd
}
