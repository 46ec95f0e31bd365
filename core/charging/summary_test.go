package charging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/chargesim/core/model"
)

func TestSummarize(t *testing.T) {
	at := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	res := model.RunResult{
		Steps: []model.StepResult{
			{Time: at, GridLoadKW: 4, SolarProdKW: 10, ChargingPowerKW: 6, SoCPercent: 50},
			{Time: at.Add(time.Minute), GridLoadKW: 6, SolarProdKW: 20, ChargingPowerKW: 12, SoCPercent: 70},
		},
		SimulatedSteps:  2,
		CompletionIndex: 1,
		CompletionTime:  at.Add(time.Minute),
		BatteryFull:     false,
	}
	sum := Summarize(res)
	assert.InDelta(t, 0.3, sum.EnergyDeliveredKWh, 1e-9)
	assert.InDelta(t, 9, sum.MeanPowerKW, 1e-9)
	assert.InDelta(t, 12, sum.PeakPowerKW, 1e-9)
	assert.InDelta(t, 5, sum.MeanGridLoadKW, 1e-9)
	assert.InDelta(t, 6, sum.PeakGridLoadKW, 1e-9)
	assert.InDelta(t, 0.5, sum.SolarEnergyKWh, 1e-9)
	assert.InDelta(t, 70, sum.FinalSoCPercent, 1e-9)
	assert.False(t, sum.BatteryFull)
	assert.Equal(t, at.Add(time.Minute), sum.CompletionTime)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(model.RunResult{})
	assert.Zero(t, sum.EnergyDeliveredKWh)
	assert.Zero(t, sum.PeakPowerKW)
}
