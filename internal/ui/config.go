package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmvillaverde/horario/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  horario config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.API.BaseURL = promptValue(reader, "Service base URL", cfg.API.BaseURL)
	cfg.API.TimeoutSeconds = promptInt(reader, "Request timeout (seconds)", cfg.API.TimeoutSeconds)
	cfg.UI.Zoom = promptFloat(reader, "Grid zoom (0.1-2.0)", cfg.UI.Zoom)
	cfg.UI.Days = promptInt(reader, "Weekday columns (5 or 7)", cfg.UI.Days)
	cfg.Cache.DBPath = promptValue(reader, "Cache database path", cfg.Cache.DBPath)
	cfg.Export.Dir = promptValue(reader, "Export directory", cfg.Export.Dir)
	cfg.Export.Format = promptValue(reader, "Export format (xlsx/csv)", cfg.Export.Format)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[api]")
	fmt.Printf("  base_url        = %s\n", cfg.API.BaseURL)
	fmt.Printf("  timeout_seconds = %d\n", cfg.API.TimeoutSeconds)
	fmt.Println("\n[ui]")
	fmt.Printf("  zoom            = %g\n", cfg.UI.Zoom)
	fmt.Printf("  days            = %d\n", cfg.UI.Days)
	fmt.Println("\n[cache]")
	fmt.Printf("  db_path         = %s\n", cfg.Cache.DBPath)
	fmt.Println("\n[export]")
	fmt.Printf("  dir             = %s\n", cfg.Export.Dir)
	fmt.Printf("  format          = %s\n", cfg.Export.Format)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Printf("  Invalid number %q.\n", value)
	}
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	for {
		value := promptValue(reader, label, strconv.FormatFloat(current, 'g', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		fmt.Printf("  Invalid number %q.\n", value)
	}
}
