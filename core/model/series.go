package model

import "time"

// StepInterval is the fixed spacing between two profile samples.
const StepInterval = time.Minute

// Sample is one fixed-interval observation of the ambient day profile.
type Sample struct {
	Time        time.Time `json:"time"`
	GridLoadKW  float64   `json:"grid_load_kw"`
	SolarProdKW float64   `json:"solar_prod_kw"`
}

// HourOfDay returns the simulated clock hour of the sample.
func (s Sample) HourOfDay() int { return s.Time.Hour() }

// Series is an ordered day profile with strictly increasing timestamps.
type Series []Sample

// Times returns the timestamps of all samples in order.
func (s Series) Times() []time.Time {
	ts := make([]time.Time, len(s))
	for i, smp := range s {
		ts[i] = smp.Time
	}
	return ts
}
