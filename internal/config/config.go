// Package config loads runtime settings from viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/ls-marstime/internal/mars"
)

// Config holds all runtime configuration for ls-marstime.
// Values are populated from .ls-marstime.yaml, LSMARSTIME_* env vars, and CLI flags.
type Config struct {
	LogLevel     string        `mapstructure:"log_level"`
	Refresh      time.Duration `mapstructure:"refresh"`
	Model        string        `mapstructure:"model"`
	Catalog      string        `mapstructure:"catalog"`
	WatchCatalog bool          `mapstructure:"watch_catalog"`
	EventsMax    int           `mapstructure:"events_max"`
}

// DefaultCatalogPath is where the mission catalog lives unless configured.
const DefaultCatalogPath = ".ls-marstime/missions.toml"

// SetDefaults registers built-in defaults with viper. Load calls it; the CLI
// calls it earlier so flag bindings see the defaults.
func SetDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("refresh", 500*time.Millisecond)
	viper.SetDefault("model", "high")
	viper.SetDefault("catalog", DefaultCatalogPath)
	viper.SetDefault("watch_catalog", false)
	viper.SetDefault("events_max", 50)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that viper cannot express.
func (c Config) Validate() error {
	if c.Refresh <= 0 {
		return fmt.Errorf("refresh must be positive, got %s", c.Refresh)
	}
	if c.EventsMax <= 0 {
		return fmt.Errorf("events_max must be positive, got %d", c.EventsMax)
	}
	if c.Catalog == "" {
		return errors.New("catalog path must not be empty")
	}
	if _, err := mars.ParseModel(c.Model); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}

// SolarModel returns the configured solar longitude model.
func (c Config) SolarModel() mars.Model {
	m, err := mars.ParseModel(c.Model)
	if err != nil {
		return mars.ModelHighAccuracy
	}
	return m
}
