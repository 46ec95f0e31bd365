package model

import "time"

// FullSoCPercent is the threshold above which a recorded SoC counts as a
// full battery.
const FullSoCPercent = 99.9

// StepResult carries the engine output for one step together with the input
// sample it was computed from, aligned index-for-index with the series.
type StepResult struct {
	Time            time.Time `json:"time"`
	GridLoadKW      float64   `json:"grid_load_kw"`
	SolarProdKW     float64   `json:"solar_prod_kw"`
	ChargingPowerKW float64   `json:"charging_power_kw"`
	SoCPercent      float64   `json:"soc_percent"`
}

// RunResult is the artifact of a single engine run.
type RunResult struct {
	// Steps covers the whole input series. Indices beyond SimulatedSteps
	// are padded: zero power, SoC held at the last simulated value.
	Steps          []StepResult
	SimulatedSteps int
	// CompletionIndex is the first index at or above FullSoCPercent, or the
	// last index when the threshold is never reached. When the run was
	// truncated before the battery filled, the fallback points at the end of
	// the padded sequence; BatteryFull tells the two cases apart.
	CompletionIndex int
	CompletionTime  time.Time
	BatteryFull     bool
}

// Completion scans steps for the first index at or above FullSoCPercent and
// falls back to the last index when the threshold is never reached. The
// boolean reports whether the threshold was actually met. An empty sequence
// yields -1.
func Completion(steps []StepResult) (int, bool) {
	for i, s := range steps {
		if s.SoCPercent >= FullSoCPercent {
			return i, true
		}
	}
	return len(steps) - 1, false
}

// FinalSoCPercent returns the SoC recorded at the end of the horizon.
func (r RunResult) FinalSoCPercent() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return r.Steps[len(r.Steps)-1].SoCPercent
}
