package metrics

import coremetrics "github.com/kilianp07/chargesim/core/metrics"

// MultiSink fanouts run events to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordSteps forwards step points when supported by the sink.
func (m *MultiSink) RecordSteps(points []coremetrics.StepPoint) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.StepRecorder); ok {
			if err := rec.RecordSteps(points); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordReplayFrame forwards replay updates when supported by the sink.
func (m *MultiSink) RecordReplayFrame(ev coremetrics.ReplayFrameEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ReplayRecorder); ok {
			if err := rec.RecordReplayFrame(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
