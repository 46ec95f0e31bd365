package model

import "time"

// ReplayFrame is one incremental update of the replay loop: the state at the
// end of the simulated prefix of a truncated run.
type ReplayFrame struct {
	RunID           string    `json:"run_id"`
	StepLimit       int       `json:"step_limit"`
	SimulatedSteps  int       `json:"simulated_steps"`
	SoCPercent      float64   `json:"soc_percent"`
	ChargingPowerKW float64   `json:"charging_power_kw"`
	BatteryFull     bool      `json:"battery_full"`
	Time            time.Time `json:"time"`
}

// NewReplayFrame summarizes the simulated prefix of a successful run for
// live streaming.
func NewReplayFrame(runID string, stepLimit int, res RunResult) ReplayFrame {
	last := res.Steps[res.SimulatedSteps-1]
	return ReplayFrame{
		RunID:           runID,
		StepLimit:       stepLimit,
		SimulatedSteps:  res.SimulatedSteps,
		SoCPercent:      last.SoCPercent,
		ChargingPowerKW: last.ChargingPowerKW,
		BatteryFull:     res.BatteryFull,
		Time:            last.Time,
	}
}
