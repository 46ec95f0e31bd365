// Package metrics defines the observability events of the charging engine
// and the recorder interfaces sinks implement. RunEvent captures a finished
// run, StepPoint one per-minute output value, ReplayFrameEvent one
// incremental replay update. Concrete sinks live in infra/metrics; NopSink
// is the default when none is configured.
package metrics
