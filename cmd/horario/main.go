package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jmvillaverde/horario/internal/api"
	"github.com/jmvillaverde/horario/internal/config"
	"github.com/jmvillaverde/horario/internal/db"
	"github.com/jmvillaverde/horario/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	cache, err := db.New(cfg.Cache.DBPath)
	if err != nil {
		return fmt.Errorf("opening snapshot cache: %w", err)
	}

	app := ui.NewApp(client, cache, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
