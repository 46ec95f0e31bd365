package app

import (
	"context"
	"testing"
	"time"

	"github.com/kilianp07/chargesim/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Replay.IntervalMS = 1
	cfg.Replay.ChunkSteps = 300
	return cfg
}

func TestServiceRunOnce(t *testing.T) {
	svc, err := New(testConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()
	res, sum, err := svc.RunOnce(0)
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(res.Steps) != 1440 {
		t.Fatalf("expected 1440 steps got %d", len(res.Steps))
	}
	// The demand cap paces the default 60 kWh / 20% battery to finish
	// exactly at the horizon end.
	if !res.BatteryFull {
		t.Fatalf("expected the default day to fill the battery")
	}
	if sum.EnergyDeliveredKWh < 40 {
		t.Fatalf("expected roughly 48 kWh delivered, got %v", sum.EnergyDeliveredKWh)
	}
}

func TestServiceRunOnceStepLimit(t *testing.T) {
	svc, err := New(testConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()
	res, _, err := svc.RunOnce(10)
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if res.SimulatedSteps != 10 {
		t.Fatalf("expected 10 simulated steps got %d", res.SimulatedSteps)
	}
	if res.BatteryFull {
		t.Fatalf("10 minutes cannot fill the battery")
	}
}

func TestServiceReplayRunsToCompletion(t *testing.T) {
	svc, err := New(testConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	frames := svc.bus.Subscribe()
	done := make(chan struct{})
	var count int
	var lastFull bool
	go func() {
		defer close(done)
		for f := range frames {
			count++
			lastFull = f.BatteryFull
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := svc.Replay(ctx); err != nil {
		t.Fatalf("replay: %v", err)
	}
	svc.bus.Close()
	<-done
	if count == 0 {
		t.Fatalf("expected at least one frame")
	}
	if !lastFull {
		t.Fatalf("expected the final frame to report a full battery")
	}
}
