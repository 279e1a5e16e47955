// Package common provides shared utilities for Moneta
package common

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Moneta
type Config struct {
	Environment string          `toml:"environment"`
	Forecast    ForecastConfig  `toml:"forecast"`
	Dashboard   DashboardConfig `toml:"dashboard"`
	Data        DataConfig      `toml:"data"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ForecastConfig holds balance projection settings.
type ForecastConfig struct {
	// HorizonMonths is the default projection length when the caller
	// does not specify one.
	HorizonMonths int `toml:"horizon_months"`
}

// DashboardConfig holds dashboard summary settings.
type DashboardConfig struct {
	// RecentPerType is how many recent entries are pulled per transaction
	// type before merging into the recent-activity feed.
	RecentPerType int `toml:"recent_per_type"`
}

// DataConfig points at the JSON snapshot loaded by the CLI.
type DataConfig struct {
	SnapshotPath string `toml:"snapshot_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Forecast: ForecastConfig{
			HorizonMonths: 12,
		},
		Dashboard: DashboardConfig{
			RecentPerType: 5,
		},
		Data: DataConfig{
			SnapshotPath: "data/snapshot.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Forecast.HorizonMonths < 0 {
		return nil, fmt.Errorf("forecast horizon_months must not be negative, got %d", config.Forecast.HorizonMonths)
	}
	if config.Dashboard.RecentPerType < 1 {
		return nil, fmt.Errorf("dashboard recent_per_type must be at least 1, got %d", config.Dashboard.RecentPerType)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MONETA_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("MONETA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if months := os.Getenv("MONETA_HORIZON_MONTHS"); months != "" {
		if m, err := strconv.Atoi(months); err == nil {
			config.Forecast.HorizonMonths = m
		}
	}

	if path := os.Getenv("MONETA_SNAPSHOT_PATH"); path != "" {
		config.Data.SnapshotPath = path
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
