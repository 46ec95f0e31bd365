package model

import "time"

// Summary aggregates one run over the whole horizon, padded steps included.
type Summary struct {
	EnergyDeliveredKWh float64   `json:"energy_delivered_kwh"`
	MeanPowerKW        float64   `json:"mean_power_kw"`
	PeakPowerKW        float64   `json:"peak_power_kw"`
	MeanGridLoadKW     float64   `json:"mean_grid_load_kw"`
	PeakGridLoadKW     float64   `json:"peak_grid_load_kw"`
	SolarEnergyKWh     float64   `json:"solar_energy_kwh"`
	FinalSoCPercent    float64   `json:"final_soc_percent"`
	BatteryFull        bool      `json:"battery_full"`
	CompletionTime     time.Time `json:"completion_time"`
}
