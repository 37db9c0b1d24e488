package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) generateCmd() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "generate <timetable-id>",
		Short: "Ask the service to (re)generate a timetable",
		Long: `Trigger schedule generation on the service. Generation runs remotely
and can take a while; use --wait to poll until it finishes, or check
later with 'horario status'.`,
		Example: `  horario generate tt-42
  horario generate tt-42 --wait`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			if err := a.client.Generate(ctx, id); err != nil {
				return fmt.Errorf("triggering generation: %w", err)
			}
			fmt.Printf("Generation started for %s\n", formatStats(id))

			if !wait {
				fmt.Println(formatMuted("Check progress with: horario status " + id))
				return nil
			}

			return a.watchStatus(ctx, id)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll status until generation finishes")
	return cmd
}
