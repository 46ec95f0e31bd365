package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/kilianp07/chargesim/core/metrics"
)

func newTestPromSink(t *testing.T, reg *prometheus.Registry) *PromSink {
	t.Helper()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected *PromSink, got %T", sinkIf)
	}
	return sink
}

func TestPromSinkRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := newTestPromSink(t, reg)
	ev := coremetrics.RunEvent{
		RunID:           "r1",
		BatteryFull:     true,
		FinalSoCPercent: 87.5,
		CompletionIndex: 1200,
	}
	if err := sink.RecordRun(ev); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if got := testutil.ToFloat64(sink.runs.WithLabelValues("true")); got != 1 {
		t.Errorf("runs counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sink.finalSoC); got != 87.5 {
		t.Errorf("final soc gauge = %v, want 87.5", got)
	}
	if got := testutil.ToFloat64(sink.completion); got != 1200 {
		t.Errorf("completion gauge = %v, want 1200", got)
	}
}

func TestPromSinkRecordSteps(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := newTestPromSink(t, reg)
	points := []coremetrics.StepPoint{
		{RunID: "r1", Index: 0, ChargingPowerKW: 5},
		{RunID: "r1", Index: 1, ChargingPowerKW: 22},
	}
	if err := sink.RecordSteps(points); err != nil {
		t.Fatalf("record steps: %v", err)
	}
	if got := testutil.CollectAndCount(sink.power); got != 1 {
		t.Errorf("expected one histogram metric, got %d", got)
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	newTestPromSink(t, reg)
	// A second sink on the same registry reuses the existing collectors.
	sink := newTestPromSink(t, reg)
	if err := sink.RecordRun(coremetrics.RunEvent{BatteryFull: false}); err != nil {
		t.Fatalf("record run: %v", err)
	}
}
