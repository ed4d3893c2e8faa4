// Package config loads CLI settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Nil when the variable is unset, so the stored app-config value applies.
	ReservePercent *float64 `env:"RENOCALC_RESERVE_PERCENT"`
	Currency       string   `env:"RENOCALC_CURRENCY"`
	ExportDir      string   `env:"RENOCALC_EXPORT_DIR"`
	ConfigPath     string   `env:"RENOCALC_CONFIG"`
	Verbose        bool     `env:"RENOCALC_VERBOSE" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ReservePercent != nil && (*cfg.ReservePercent < 0 || *cfg.ReservePercent > 100) {
		return nil, fmt.Errorf("RENOCALC_RESERVE_PERCENT must be between 0 and 100, got %g", *cfg.ReservePercent)
	}

	return &cfg, nil
}
