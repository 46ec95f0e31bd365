package charging

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	runsTotal       *prometheus.CounterVec
	stepsSimulated  prometheus.Counter
	energyDelivered prometheus.Counter
	lastFinalSoC    prometheus.Gauge
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, prometheus.Counter, prometheus.Counter, prometheus.Gauge) {
	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charging_runs_total",
			Help: "Number of completed engine runs",
		},
		[]string{"battery_full"},
	)
	steps := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "charging_steps_simulated_total",
			Help: "Number of simulated one-minute steps",
		},
	)
	energy := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "charging_energy_delivered_kwh_total",
			Help: "Energy delivered to the battery across all runs",
		},
	)
	soc := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "charging_last_final_soc_percent",
			Help: "Final state of charge of the most recent run",
		},
	)
	return runs, steps, energy, soc
}

func init() {
	runsTotal, stepsSimulated, energyDelivered, lastFinalSoC = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers engine metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(runsTotal, stepsSimulated, energyDelivered, lastFinalSoC)
}

// ResetMetrics reinitializes metric collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	runsTotal, stepsSimulated, energyDelivered, lastFinalSoC = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
