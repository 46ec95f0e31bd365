package model

import (
	"fmt"
	"math"
)

// ChargingParams holds the caller-supplied battery and charger limits,
// constant for a whole simulation run.
type ChargingParams struct {
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	InitialSoC         float64 `json:"initial_soc"`
	MaxPowerKW         float64 `json:"max_power_kw"`
}

// Validate checks that the parameters describe a chargeable battery.
// An InitialSoC of exactly 1 is accepted: the run is degenerate but defined,
// the engine allocates zero power and completes at step 0.
func (p ChargingParams) Validate() error {
	// NaN fails every comparison, so the checks are written in accepting
	// form: anything that is not provably in range is rejected.
	if !(p.BatteryCapacityKWh > 0) || math.IsInf(p.BatteryCapacityKWh, 0) {
		return fmt.Errorf("battery capacity must be positive")
	}
	if !(p.MaxPowerKW > 0) || math.IsInf(p.MaxPowerKW, 0) {
		return fmt.Errorf("max power must be positive")
	}
	if !(p.InitialSoC >= 0 && p.InitialSoC <= 1) {
		return fmt.Errorf("initial soc must be within [0,1]")
	}
	return nil
}

// EnergyNeededKWh returns the energy required to fill the battery from the
// given state of charge, floored at zero.
func (p ChargingParams) EnergyNeededKWh(soc float64) float64 {
	need := p.BatteryCapacityKWh * (1 - soc)
	if need < 0 {
		return 0
	}
	return need
}
