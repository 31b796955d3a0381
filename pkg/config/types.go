// Package config provides configuration loading and validation for tvlog.
package config

// Config is the root configuration structure loaded from YAML. Every
// field has a built-in default, so the tool runs without a config file.
type Config struct {
	// TimestampLayout is the Go time layout for connection-log
	// timestamps (day-month-year).
	TimestampLayout string `yaml:"timestamp_layout"`

	// LogfileGlob matches program log file names inside the scanned
	// directory.
	LogfileGlob string `yaml:"logfile_glob"`

	// TopN is how many records a shortest/longest ranking returns.
	TopN int `yaml:"top_n"`

	// Sentinels optionally overrides the per-layout duration sentinels.
	Sentinels SentinelConfig `yaml:"sentinels,omitempty"`
}

// SentinelConfig overrides the duration sentinel per layout. Empty
// values keep the historical defaults ("Invalid Duration" for the
// incoming layout, "--" for the connections layout).
type SentinelConfig struct {
	Incoming    string `yaml:"incoming,omitempty"`
	Connections string `yaml:"connections,omitempty"`
}
