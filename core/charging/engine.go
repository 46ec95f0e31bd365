package charging

import (
	"fmt"
	"strconv"

	"github.com/kilianp07/chargesim/core/logger"
	"github.com/kilianp07/chargesim/core/model"
)

// Power selection thresholds of the per-step decision rule.
const (
	// SolarSignificantKW is the production level above which solar powers
	// the charge directly.
	SolarSignificantKW = 5.0
	// ShedCapKW is the flat power cap during the evening peak window.
	ShedCapKW = 5.0
	// ShedStartHour and ShedEndHour bound the evening peak window, both
	// inclusive, in simulated clock hours.
	ShedStartHour = 18
	ShedEndHour   = 22
)

// Engine allocates charging power minute by minute over a day profile and
// integrates the battery state of charge. Each run owns its state
// exclusively; repeated calls with the same inputs yield identical results.
type Engine struct {
	log logger.Logger
}

// New creates an Engine that reports run diagnostics through log.
func New(log logger.Logger) *Engine {
	return &Engine{log: log}
}

// Run simulates the whole series.
func (e *Engine) Run(series model.Series, params model.ChargingParams) (model.RunResult, error) {
	return e.RunSteps(series, params, len(series))
}

// RunSteps simulates the first stepLimit steps of series and pads the rest
// with zero power and a held SoC. The limit is clamped to [1, len(series)],
// so at least one step is always simulated and the demand cap never divides
// by zero. The run always starts from params.InitialSoC; there is no resume.
func (e *Engine) RunSteps(series model.Series, params model.ChargingParams, stepLimit int) (model.RunResult, error) {
	if err := params.Validate(); err != nil {
		return model.RunResult{}, err
	}
	if len(series) == 0 {
		return model.RunResult{}, fmt.Errorf("empty series")
	}
	horizon := stepLimit
	if horizon < 1 {
		horizon = 1
	}
	if horizon > len(series) {
		horizon = len(series)
	}

	e.log.Infow("charging run started", map[string]any{
		"capacity_kwh": params.BatteryCapacityKWh,
		"initial_soc":  params.InitialSoC,
		"max_power_kw": params.MaxPowerKW,
		"steps":        horizon,
	})

	soc := params.InitialSoC
	needed := params.EnergyNeededKWh(soc)
	delivered := 0.0
	steps := make([]model.StepResult, len(series))
	for i := 0; i < horizon; i++ {
		s := series[i]
		remaining := float64(horizon - i)
		// Power that finishes the charge exactly at the effective horizon
		// if sustained for all remaining minutes.
		demandCap := needed * 60 / remaining
		power := selectPower(s, params.MaxPowerKW, demandCap)

		soc += power / 60 / params.BatteryCapacityKWh
		if soc > 1 {
			soc = 1
		}
		needed = params.EnergyNeededKWh(soc)
		delivered += power / 60

		steps[i] = model.StepResult{
			Time:            s.Time,
			GridLoadKW:      s.GridLoadKW,
			SolarProdKW:     s.SolarProdKW,
			ChargingPowerKW: power,
			SoCPercent:      soc * 100,
		}
	}

	// Steps beyond the limit are not simulated: zero power, SoC held at the
	// last simulated value.
	held := steps[horizon-1].SoCPercent
	for i := horizon; i < len(series); i++ {
		s := series[i]
		steps[i] = model.StepResult{
			Time:        s.Time,
			GridLoadKW:  s.GridLoadKW,
			SolarProdKW: s.SolarProdKW,
			SoCPercent:  held,
		}
	}

	idx, full := model.Completion(steps)
	res := model.RunResult{
		Steps:           steps,
		SimulatedSteps:  horizon,
		CompletionIndex: idx,
		CompletionTime:  steps[idx].Time,
		BatteryFull:     full,
	}

	runsTotal.WithLabelValues(strconv.FormatBool(full)).Inc()
	stepsSimulated.Add(float64(horizon))
	energyDelivered.Add(delivered)
	lastFinalSoC.Set(res.FinalSoCPercent())
	return res, nil
}

// selectPower applies the per-step priority rule: significant solar first,
// then the evening load-shedding cap, otherwise full hardware power. The
// demand cap bounds every branch.
func selectPower(s model.Sample, maxPowerKW, demandCapKW float64) float64 {
	switch {
	case s.SolarProdKW > SolarSignificantKW:
		return min(s.SolarProdKW, maxPowerKW, demandCapKW)
	case s.HourOfDay() >= ShedStartHour && s.HourOfDay() <= ShedEndHour:
		return min(ShedCapKW, maxPowerKW, demandCapKW)
	default:
		return min(maxPowerKW, demandCapKW)
	}
}
