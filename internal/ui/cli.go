// Package ui is the cobra command layer of horario.
package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmvillaverde/horario/internal/api"
	"github.com/jmvillaverde/horario/internal/config"
	"github.com/jmvillaverde/horario/internal/timetable"
	"github.com/jmvillaverde/horario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	client *api.Client
	cache  timetable.Cache
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given service client,
// snapshot cache and config.
func NewApp(client *api.Client, cache timetable.Cache, cfg *config.Config) *App {
	a := &App{client: client, cache: cache, config: cfg}

	a.root = &cobra.Command{
		Use:   "horario [timetable-id]",
		Short: "A dashboard for school timetable schedules",
		Long: `Horario is a terminal dashboard for a timetable generation service.

It fetches generated schedules, lays them out as a weekly grid with
overlapping classes side by side, and keeps a local copy so timetables
stay viewable offline. Run it with a timetable ID to open the
interactive view, or use the subcommands for one-shot operations.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := a.resolveTimetableID(args)
			if err != nil {
				return err
			}
			return tui.Run(a.client, a.cache, a.config, id)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.uploadCmd())
	a.root.AddCommand(a.generateCmd())
	a.root.AddCommand(a.statusCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.cachedCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("horario %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the snapshot cache.
func (a *App) Close() error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Close()
}

// resolveTimetableID picks the timetable to open: the explicit argument if
// given, otherwise the most recently fetched cached snapshot.
func (a *App) resolveTimetableID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	snaps, err := a.cache.ListSnapshots(context.Background())
	if err != nil {
		return "", fmt.Errorf("listing cached timetables: %w", err)
	}
	if len(snaps) == 0 {
		return "", fmt.Errorf("no timetable ID given and nothing cached yet")
	}
	return snaps[0].ID, nil
}

// loadSnapshot fetches a timetable from the service and caches it. When the
// service is unreachable it falls back to the cached copy, and when
// cachedOnly is set it never contacts the service at all.
func (a *App) loadSnapshot(ctx context.Context, id string, cachedOnly bool) (*timetable.Snapshot, error) {
	if cachedOnly {
		snap, err := a.cache.LoadSnapshot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading cached timetable: %w", err)
		}
		if snap == nil {
			return nil, fmt.Errorf("timetable %q is not cached", id)
		}
		return snap, nil
	}

	snap, err := a.client.Timetable(ctx, id)
	if err != nil {
		cached, cerr := a.cache.LoadSnapshot(ctx, id)
		if cerr == nil && cached != nil {
			fmt.Println(formatWarn(fmt.Sprintf("service unreachable, showing cached copy: %v", err)))
			return cached, nil
		}
		return nil, fmt.Errorf("fetching timetable: %w", err)
	}

	if err := a.cache.SaveSnapshot(ctx, snap); err != nil {
		fmt.Println(formatWarn(fmt.Sprintf("could not cache timetable: %v", err)))
	}
	return snap, nil
}
