package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmvillaverde/horario/internal/api"
)

// statusPollInterval is how often --watch and generate --wait re-poll.
const statusPollInterval = 2 * time.Second

func (a *App) statusCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status <timetable-id>",
		Short: "Show generation progress for a timetable",
		Example: `  horario status tt-42
  horario status tt-42 --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			if watch {
				return a.watchStatus(ctx, id)
			}

			status, err := a.client.Status(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching status: %w", err)
			}
			printStatus(status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Poll until generation finishes")
	return cmd
}

// watchStatus polls the service until generation reaches a terminal state.
func (a *App) watchStatus(ctx context.Context, id string) error {
	for {
		status, err := a.client.Status(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching status: %w", err)
		}

		fmt.Printf("\r%s", statusLine(status))

		switch status.State {
		case "done":
			fmt.Println()
			fmt.Println(formatStats("Generation finished."))
			return nil
		case "failed":
			fmt.Println()
			if status.Message != "" {
				return fmt.Errorf("generation failed: %s", status.Message)
			}
			return fmt.Errorf("generation failed")
		}

		select {
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		case <-time.After(statusPollInterval):
		}
	}
}

func printStatus(status *api.GenerationStatus) {
	fmt.Println(statusLine(status))
	if status.Message != "" {
		fmt.Println(formatMuted("  " + status.Message))
	}
}

// statusLine renders one status as "state [████░░] 42% fitness 0.91".
func statusLine(status *api.GenerationStatus) string {
	line := fmt.Sprintf("%-8s %s %3.0f%%", status.State, ProgressBar(status.Progress, 20), status.Progress)
	if status.Fitness > 0 {
		line += formatMuted(fmt.Sprintf("  fitness %.2f", status.Fitness))
	}
	return line
}

// ProgressBar creates an ASCII bar for a 0-100 percentage.
func ProgressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent * float64(width) / 100)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return "[" + formatStats(bar) + "]"
}
