package config

import "os"

// Environment variable names.
const (
	EnvTimestampLayout = "TVLOG_TIMESTAMP_LAYOUT"
	EnvLogfileGlob     = "TVLOG_LOGFILE_GLOB"
)

// DefaultConfig returns a configuration with the tool's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TimestampLayout: "02-01-2006 15:04:05",
		LogfileGlob:     "*Logfile*.log",
		TopN:            10,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.TimestampLayout = layout
	}
	if glob := os.Getenv(EnvLogfileGlob); glob != "" {
		c.LogfileGlob = glob
	}
}
