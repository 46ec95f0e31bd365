package config

import (
	"fmt"
	"time"
)

// ProfileConfig configures the synthetic day profile generator.
type ProfileConfig struct {
	// HorizonSteps is the number of one-minute samples in the day.
	HorizonSteps int `json:"horizon_steps"`
	// Seed drives the noise generator. The same seed always reproduces the
	// identical series.
	Seed int64 `json:"seed"`
	// Start is the horizon origin as an RFC3339 timestamp.
	Start string `json:"start"`
}

// SetDefaults applies fallback values for optional fields.
func (c *ProfileConfig) SetDefaults() {
	if c.HorizonSteps <= 0 {
		c.HorizonSteps = 1440
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.Start == "" {
		c.Start = "2025-05-12T00:00:00Z"
	}
}

// Validate checks the configuration ranges.
func (c ProfileConfig) Validate() error {
	if c.HorizonSteps <= 0 {
		return fmt.Errorf("horizon_steps must be >0")
	}
	if _, err := time.Parse(time.RFC3339, c.Start); err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	return nil
}

// StartTime returns the parsed horizon origin.
func (c ProfileConfig) StartTime() time.Time {
	t, err := time.Parse(time.RFC3339, c.Start)
	if err != nil {
		return time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	}
	return t
}
