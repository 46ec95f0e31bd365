package model

import (
	"math"
	"testing"
)

func TestChargingParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		params  ChargingParams
		wantErr bool
	}{
		{"valid", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 0.2, MaxPowerKW: 22}, false},
		{"full battery", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 1, MaxPowerKW: 22}, false},
		{"empty battery", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 0, MaxPowerKW: 22}, false},
		{"zero capacity", ChargingParams{BatteryCapacityKWh: 0, InitialSoC: 0.2, MaxPowerKW: 22}, true},
		{"negative capacity", ChargingParams{BatteryCapacityKWh: -1, InitialSoC: 0.2, MaxPowerKW: 22}, true},
		{"zero power", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 0.2, MaxPowerKW: 0}, true},
		{"soc below range", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: -0.1, MaxPowerKW: 22}, true},
		{"soc above range", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 1.1, MaxPowerKW: 22}, true},
		{"nan capacity", ChargingParams{BatteryCapacityKWh: math.NaN(), InitialSoC: 0.2, MaxPowerKW: 22}, true},
		{"nan soc", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: math.NaN(), MaxPowerKW: 22}, true},
		{"nan power", ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 0.2, MaxPowerKW: math.NaN()}, true},
		{"infinite capacity", ChargingParams{BatteryCapacityKWh: math.Inf(1), InitialSoC: 0.2, MaxPowerKW: 22}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.params.Validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEnergyNeededKWh(t *testing.T) {
	p := ChargingParams{BatteryCapacityKWh: 60, InitialSoC: 0.2, MaxPowerKW: 22}
	if got := p.EnergyNeededKWh(0.2); got != 48 {
		t.Fatalf("expected 48 got %v", got)
	}
	if got := p.EnergyNeededKWh(1); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
	// SoC above 1 must not yield negative energy.
	if got := p.EnergyNeededKWh(1.01); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
}
