// Package config loads runtime settings from an optional YAML file and
// LABS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/selection"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration.
type Config struct {
	DBPath             string          `yaml:"db_path"`
	VATRate            float64         `yaml:"vat_rate"`
	DefaultViewMode    domain.ViewMode `yaml:"default_view_mode"`
	InheritanceDefault bool            `yaml:"inheritance_default"`
	LogLevel           string          `yaml:"log_level"`
	LogCalls           bool            `yaml:"log_calls"`
}

// DefaultConfig returns the built-in defaults. The database lives under
// ~/.labs unless the home directory cannot be resolved.
func DefaultConfig() Config {
	dbPath := filepath.Join(".labs", "labs.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".labs", "labs.db")
	}
	return Config{
		DBPath:             dbPath,
		VATRate:            selection.DefaultVATRate,
		DefaultViewMode:    domain.DefaultViewMode,
		InheritanceDefault: true,
		LogLevel:           "warn",
		LogCalls:           false,
	}
}

// DefaultPath is the config file read when LABS_CONFIG is unset.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".labs", "config.yaml")
}

// LoadConfig reads the YAML file at path (a missing file is not an error),
// then applies environment overrides and validates the result. An empty
// path means LABS_CONFIG, falling back to DefaultPath.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("LABS_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from LABS_* variables. Unparseable values are
// ignored.
func applyEnv(cfg *Config) {
	if v := os.Getenv("LABS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LABS_VAT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.VATRate = f
		}
	}
	if v := os.Getenv("LABS_VIEW_MODE"); v != "" {
		if mode := domain.ViewMode(v); domain.ValidViewModes[mode] {
			cfg.DefaultViewMode = mode
		}
	}
	if v := os.Getenv("LABS_INHERITANCE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.InheritanceDefault = b
		}
	}
	if v := os.Getenv("LABS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LABS_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		}
	}
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return domain.NewValidationError("db_path", "database path is required")
	}
	if c.VATRate < 0 || c.VATRate > 1 {
		return domain.NewValidationError("vat_rate", "%v is outside [0, 1]", c.VATRate)
	}
	if !domain.ValidViewModes[c.DefaultViewMode] {
		return domain.NewValidationError("default_view_mode", "unknown view mode %q", c.DefaultViewMode)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return domain.NewValidationError("log_level", "unknown log level %q", c.LogLevel)
	}
	return nil
}
