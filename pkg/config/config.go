package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path returns
// the defaults (with environment overrides applied).
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.TimestampLayout == "" {
		return errors.New("timestamp_layout: layout is required")
	}

	if cfg.LogfileGlob == "" {
		return errors.New("logfile_glob: pattern is required")
	}
	if !doublestar.ValidatePattern(cfg.LogfileGlob) {
		return fmt.Errorf("logfile_glob: invalid pattern %q", cfg.LogfileGlob)
	}

	if cfg.TopN <= 0 {
		return fmt.Errorf("top_n: must be positive, got %d", cfg.TopN)
	}

	return nil
}
