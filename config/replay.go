package config

import (
	"fmt"
	"time"
)

// ReplayConfig paces the incremental re-simulation loop. Every update
// regenerates the profile and reruns the engine from step zero with a larger
// step limit; the loop itself carries no engine state.
type ReplayConfig struct {
	// ChunkSteps is the step limit increment per update.
	ChunkSteps int `json:"chunk_steps"`
	// IntervalMS is the real-time delay between updates in milliseconds.
	IntervalMS int `json:"interval_ms"`
	// RunToEnd keeps the loop going to the horizon end instead of stopping
	// as soon as the battery reports full.
	RunToEnd bool `json:"run_to_end"`
}

// SetDefaults applies fallback values for optional fields.
func (c *ReplayConfig) SetDefaults() {
	if c.ChunkSteps <= 0 {
		c.ChunkSteps = 60
	}
	if c.IntervalMS <= 0 {
		c.IntervalMS = 500
	}
}

// Validate checks the configuration ranges.
func (c ReplayConfig) Validate() error {
	if c.ChunkSteps <= 0 {
		return fmt.Errorf("chunk_steps must be >0")
	}
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must be >=0")
	}
	return nil
}

// Interval returns the pacing delay between updates.
func (c ReplayConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}
