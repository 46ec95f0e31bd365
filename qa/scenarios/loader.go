package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/chargesim/core/model"
)

// ChargerDef describes the battery and charger limits of a scenario.
type ChargerDef struct {
	BatteryKWh float64 `yaml:"battery_kwh"`
	InitialSoC float64 `yaml:"initial_soc"`
	MaxPowerKW float64 `yaml:"max_power_kw"`
}

// ToModel converts the definition into engine parameters.
func (c ChargerDef) ToModel() model.ChargingParams {
	return model.ChargingParams{
		BatteryCapacityKWh: c.BatteryKWh,
		InitialSoC:         c.InitialSoC,
		MaxPowerKW:         c.MaxPowerKW,
	}
}

// ProfileDef selects the synthetic day the scenario runs against. Zero
// values fall back to the generator defaults.
type ProfileDef struct {
	Seed         int64 `yaml:"seed,omitempty"`
	HorizonSteps int   `yaml:"horizon_steps,omitempty"`
}

// Expected lists the assertions checked after the run.
type Expected struct {
	BatteryFull bool `yaml:"battery_full"`
	// CompletionWithin is the maximum accepted completion index. Negative
	// disables the check.
	CompletionWithin int `yaml:"completion_within"`
	// MaxPowerKW bounds every allocated power value when positive.
	MaxPowerKW float64 `yaml:"max_power_kw,omitempty"`
	// PeakWindowCapKW bounds evening steps without significant solar when
	// positive.
	PeakWindowCapKW float64 `yaml:"peak_window_cap_kw,omitempty"`
}

// Scenario is one yaml-defined charging run with its expectations.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Charger     ChargerDef `yaml:"charger"`
	Profile     ProfileDef `yaml:"profile,omitempty"`
	StepLimit   int        `yaml:"step_limit,omitempty"`
	Expected    Expected   `yaml:"expected"`
}

// Load reads one scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
