package profile

import (
	"math"
	"math/rand"
	"time"

	"github.com/kilianp07/chargesim/config"
	"github.com/kilianp07/chargesim/core/model"
)

// Fixed shape constants of the synthetic day. The evening boost is addressed
// by absolute step index over the reference 1440-step day, not by clock time.
const (
	baseLoadKW     = 5.0
	loadSwingKW    = 10.0
	loadNoiseSigma = 1.0

	eveningBoostKW  = 10.0
	boostStartIndex = 1080
	boostEndIndex   = 1320

	solarPeakKW     = 15.0
	solarNoonHour   = 12.0
	solarShape      = 8.0
	solarNoiseSigma = 0.5
)

// Generator synthesizes the ambient day profile: a sinusoidal grid demand
// curve with an evening peak and a solar bell centered at noon, both with
// Gaussian noise. The same configuration always yields the identical series.
type Generator struct {
	cfg config.ProfileConfig
}

// New creates a Generator for the given profile configuration.
func New(cfg config.ProfileConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate produces the full day series with strictly increasing one-minute
// timestamps starting at the configured origin.
func (g *Generator) Generate() model.Series {
	n := g.cfg.HorizonSteps
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	start := g.cfg.StartTime()

	series := make(model.Series, n)
	for i := range series {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}

		load := baseLoadKW + loadSwingKW*math.Sin(2*math.Pi*frac) + rng.NormFloat64()*loadNoiseSigma
		if i >= boostStartIndex && i < boostEndIndex {
			load += eveningBoostKW
		}

		hour := 24 * frac
		d := hour - solarNoonHour
		solar := solarPeakKW*math.Exp(-d*d/solarShape) + rng.NormFloat64()*solarNoiseSigma
		if solar < 0 {
			solar = 0
		}

		series[i] = model.Sample{
			Time:        start.Add(time.Duration(i) * model.StepInterval),
			GridLoadKW:  load,
			SolarProdKW: solar,
		}
	}
	return series
}
