// Package config provides configuration management for the declcheck CLI.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat  string        `koanf:"output"`
	Verbose       bool          `koanf:"verbose"`
	LogLevel      string        `koanf:"log_level"`
	Indent        string        `koanf:"indent"`
	Jobs          int           `koanf:"jobs"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel      = "info"
	DefaultIndent        = "  "
	DefaultWatchDebounce = 200 * time.Millisecond
	EnvPrefix            = "DECLCHECK_"
)

// ConfigFileNames are searched in the working directory when no --config is
// given.
var ConfigFileNames = []string{"declcheck.yaml", "declcheck.yml"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat:  DefaultOutput,
		LogLevel:      DefaultLogLevel,
		Indent:        DefaultIndent,
		WatchDebounce: DefaultWatchDebounce,
	}
}
