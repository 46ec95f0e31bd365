package config

import (
	"fmt"
)

// LoggingConfig controls the zerolog output of all components.
type LoggingConfig struct {
	// Level is the minimum severity that gets emitted: debug, info, warn
	// or error.
	Level string `json:"level"`
	// Pretty forces the human-readable console writer regardless of APP_ENV.
	Pretty bool `json:"pretty"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks that the level is known.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
}
