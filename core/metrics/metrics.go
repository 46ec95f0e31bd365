package metrics

import "time"

// RunEvent captures one completed engine run.
type RunEvent struct {
	RunID           string
	CapacityKWh     float64
	InitialSoC      float64
	MaxPowerKW      float64
	SimulatedSteps  int
	CompletionIndex int
	CompletionTime  time.Time
	BatteryFull     bool
	FinalSoCPercent float64
	Time            time.Time
}

// MetricsSink records engine runs for observability purposes.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// StepPoint is one engine output step attributed to a run.
type StepPoint struct {
	RunID           string
	Index           int
	GridLoadKW      float64
	SolarProdKW     float64
	ChargingPowerKW float64
	SoCPercent      float64
	Time            time.Time
}

// StepRecorder is implemented by sinks able to record per-step output.
type StepRecorder interface {
	RecordSteps(points []StepPoint) error
}

// ReplayFrameEvent captures one incremental update of the replay loop.
type ReplayFrameEvent struct {
	RunID      string
	StepLimit  int
	SoCPercent float64
	Time       time.Time
}

// ReplayRecorder is implemented by sinks able to record replay updates.
type ReplayRecorder interface {
	RecordReplayFrame(ev ReplayFrameEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error { return nil }

func (NopSink) RecordSteps([]StepPoint) error          { return nil }
func (NopSink) RecordReplayFrame(ReplayFrameEvent) error { return nil }
