package charging

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/chargesim/core/model"
)

// Summarize computes the aggregate view of a run result.
func Summarize(res model.RunResult) model.Summary {
	if len(res.Steps) == 0 {
		return model.Summary{}
	}
	powers := make([]float64, len(res.Steps))
	loads := make([]float64, len(res.Steps))
	solar := make([]float64, len(res.Steps))
	for i, s := range res.Steps {
		powers[i] = s.ChargingPowerKW
		loads[i] = s.GridLoadKW
		solar[i] = s.SolarProdKW
	}
	return model.Summary{
		EnergyDeliveredKWh: floats.Sum(powers) / 60,
		MeanPowerKW:        stat.Mean(powers, nil),
		PeakPowerKW:        floats.Max(powers),
		MeanGridLoadKW:     stat.Mean(loads, nil),
		PeakGridLoadKW:     floats.Max(loads),
		SolarEnergyKWh:     floats.Sum(solar) / 60,
		FinalSoCPercent:    res.FinalSoCPercent(),
		BatteryFull:        res.BatteryFull,
		CompletionTime:     res.CompletionTime,
	}
}
