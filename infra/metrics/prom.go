package metrics

import (
	"strconv"

	coremetrics "github.com/kilianp07/chargesim/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records engine runs in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	finalSoC   prometheus.Gauge
	completion prometheus.Gauge
	power      prometheus.Histogram
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of engine runs",
	}, []string{"battery_full"})
	finalSoC := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_final_soc_percent",
		Help: "Final state of charge of the last run",
	})
	completion := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_completion_index",
		Help: "Completion step index of the last run",
	})
	power := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_charging_power_kw",
		Help:    "Distribution of allocated charging power",
		Buckets: prometheus.LinearBuckets(0, 2.5, 10),
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(finalSoC); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			finalSoC = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(completion); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			completion = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(power); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			power = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, finalSoC: finalSoC, completion: completion, power: power}, nil
}

// RecordRun increments the run counter and updates the last-run gauges.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(strconv.FormatBool(ev.BatteryFull)).Inc()
	s.finalSoC.Set(ev.FinalSoCPercent)
	s.completion.Set(float64(ev.CompletionIndex))
	return nil
}

// RecordSteps feeds the charging power histogram.
func (s *PromSink) RecordSteps(points []coremetrics.StepPoint) error {
	for _, p := range points {
		s.power.Observe(p.ChargingPowerKW)
	}
	return nil
}
