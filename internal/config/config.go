// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	UI     UIConfig     `toml:"ui"`
	Cache  CacheConfig  `toml:"cache"`
	Export ExportConfig `toml:"export"`
}

// APIConfig holds timetable service settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // e.g., "http://localhost:8080"
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-request timeout
}

// UIConfig holds grid display settings.
type UIConfig struct {
	Zoom float64 `toml:"zoom"` // grid zoom factor, 0.1-2.0
	Days int     `toml:"days"` // weekday columns: 5 (Mon-Fri) or 7
}

// CacheConfig holds local snapshot cache settings.
type CacheConfig struct {
	DBPath string `toml:"db_path"`
}

// ExportConfig holds export download settings.
type ExportConfig struct {
	Dir    string `toml:"dir"`    // where exported files land
	Format string `toml:"format"` // "xlsx" or "csv"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 30,
		},
		UI: UIConfig{
			Zoom: 1.0,
			Days: 5,
		},
		Cache: CacheConfig{
			DBPath: defaultDBPath(),
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: "xlsx",
		},
	}
}

// defaultDBPath returns the default cache database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "horario.db"
	}
	return filepath.Join(home, ".local", "share", "horario", "horario.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "horario", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Cache.DBPath = expandPath(cfg.Cache.DBPath)
	cfg.Export.Dir = expandPath(cfg.Export.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HORARIO_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("HORARIO_API_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv("HORARIO_UI_ZOOM"); v != "" {
		if zoom, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.UI.Zoom = zoom
		}
	}
	if v := os.Getenv("HORARIO_UI_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.UI.Days = days
		}
	}
	if v := os.Getenv("HORARIO_DB_PATH"); v != "" {
		cfg.Cache.DBPath = v
	}
	if v := os.Getenv("HORARIO_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("HORARIO_EXPORT_FORMAT"); v != "" {
		cfg.Export.Format = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validFormats = map[string]bool{
	"xlsx": true,
	"csv":  true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base_url must be set")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("api base_url: %w", err)
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api timeout_seconds must be positive")
	}
	if c.UI.Zoom < 0.1 || c.UI.Zoom > 2.0 {
		return fmt.Errorf("ui zoom must be between 0.1 and 2.0, got %v", c.UI.Zoom)
	}
	if c.UI.Days < 1 || c.UI.Days > 7 {
		return fmt.Errorf("ui days must be between 1 and 7, got %d", c.UI.Days)
	}
	if c.Cache.DBPath == "" {
		return errors.New("cache db_path must be set")
	}
	if !validFormats[strings.ToLower(c.Export.Format)] {
		return fmt.Errorf("export format must be xlsx or csv, got %q", c.Export.Format)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
