package scenarios

import (
	"testing"

	"github.com/kilianp07/chargesim/config"
	"github.com/kilianp07/chargesim/core/charging"
	"github.com/kilianp07/chargesim/core/profile"
	"github.com/kilianp07/chargesim/infra/logger"
)

// RunScenario generates the scenario's day, runs the engine and checks the
// expectations.
func RunScenario(t *testing.T, sc *Scenario) {
	cfg := config.ProfileConfig{
		HorizonSteps: sc.Profile.HorizonSteps,
		Seed:         sc.Profile.Seed,
	}
	cfg.SetDefaults()
	series := profile.New(cfg).Generate()

	eng := charging.New(logger.NopLogger{})
	limit := sc.StepLimit
	if limit == 0 {
		limit = len(series)
	}
	res, err := eng.RunSteps(series, sc.Charger.ToModel(), limit)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.BatteryFull != sc.Expected.BatteryFull {
		t.Errorf("battery_full = %v, want %v", res.BatteryFull, sc.Expected.BatteryFull)
	}
	if sc.Expected.CompletionWithin >= 0 && res.CompletionIndex > sc.Expected.CompletionWithin {
		t.Errorf("completion index %d exceeds %d", res.CompletionIndex, sc.Expected.CompletionWithin)
	}
	for i, s := range res.Steps {
		if sc.Expected.MaxPowerKW > 0 && s.ChargingPowerKW > sc.Expected.MaxPowerKW {
			t.Errorf("step %d: power %v exceeds %v", i, s.ChargingPowerKW, sc.Expected.MaxPowerKW)
		}
		if sc.Expected.PeakWindowCapKW > 0 {
			h := s.Time.Hour()
			if h >= charging.ShedStartHour && h <= charging.ShedEndHour &&
				s.SolarProdKW <= charging.SolarSignificantKW &&
				s.ChargingPowerKW > sc.Expected.PeakWindowCapKW {
				t.Errorf("step %d: evening power %v exceeds cap %v", i, s.ChargingPowerKW, sc.Expected.PeakWindowCapKW)
			}
		}
	}
}
