package config

import "github.com/kilianp07/chargesim/core/model"

// ChargerConfig holds the battery and charger limits of a run.
type ChargerConfig struct {
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	InitialSoC         float64 `json:"initial_soc"`
	MaxPowerKW         float64 `json:"max_power_kw"`
}

// SetDefaults applies fallback values for optional fields.
func (c *ChargerConfig) SetDefaults() {
	if c.BatteryCapacityKWh == 0 {
		c.BatteryCapacityKWh = 60
	}
	if c.InitialSoC == 0 {
		c.InitialSoC = 0.2
	}
	if c.MaxPowerKW == 0 {
		c.MaxPowerKW = 22
	}
}

// Validate checks the configured limits.
func (c ChargerConfig) Validate() error {
	return c.Params().Validate()
}

// Params converts the configuration into engine parameters.
func (c ChargerConfig) Params() model.ChargingParams {
	return model.ChargingParams{
		BatteryCapacityKWh: c.BatteryCapacityKWh,
		InitialSoC:         c.InitialSoC,
		MaxPowerKW:         c.MaxPowerKW,
	}
}
