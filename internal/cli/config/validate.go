package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/declcheck/internal/cli/output"
)

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !output.Mode(c.OutputFormat).Valid() {
		return fmt.Errorf("unknown output format %q (want one of auto, text, markdown, json)", c.OutputFormat)
	}

	if c.LogLevel != "" && !containsFold(LogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.LogLevel, strings.Join(LogLevels, ", "))
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}

	return nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
