package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <dataset-file>",
		Short: "Upload a dataset to the service",
		Long: `Upload a dataset file (courses, teachers, rooms, sections and their
constraints) to the timetable service. The service answers with the
dataset ID to generate timetables from.`,
		Example: `  horario upload semester1.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := a.client.UploadDataset(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("uploading dataset: %w", err)
			}

			fmt.Printf("Dataset uploaded: %s\n", formatStats(id))
			return nil
		},
	}
}
