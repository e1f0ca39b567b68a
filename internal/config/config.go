// Package config loads shared CLI settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by all seedling commands. Flags can
// override individual fields after loading.
type Config struct {
	// DataDir is the directory holding the MNIST IDX files.
	DataDir string `env:"SEEDLING_DATA_DIR" envDefault:"data"`

	// HiddenSize is the hidden layer width used when creating models.
	HiddenSize int `env:"SEEDLING_HIDDEN_SIZE" envDefault:"128"`

	// Verbose enables debug logging.
	Verbose bool `env:"SEEDLING_VERBOSE" envDefault:"false"`
}

// FromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HiddenSize <= 0 {
		return Config{}, fmt.Errorf("SEEDLING_HIDDEN_SIZE must be positive, got %d", cfg.HiddenSize)
	}
	return cfg, nil
}
