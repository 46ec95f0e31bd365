package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/chargesim/core/metrics"
	"github.com/kilianp07/chargesim/infra/logger"
)

// InfluxSink writes run results to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes the run event as a line protocol point.
func (s *InfluxSink) RecordRun(ev coremetrics.RunEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("charging_run").
		AddTag("run_id", ev.RunID).
		AddTag("battery_full", strconv.FormatBool(ev.BatteryFull)).
		AddTag("component", "charging_engine").
		AddField("capacity_kwh", round3(ev.CapacityKWh)).
		AddField("initial_soc", round3(ev.InitialSoC)).
		AddField("max_power_kw", round3(ev.MaxPowerKW)).
		AddField("simulated_steps", ev.SimulatedSteps).
		AddField("completion_index", ev.CompletionIndex).
		AddField("final_soc_percent", round3(ev.FinalSoCPercent)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordSteps writes one point per engine output step.
func (s *InfluxSink) RecordSteps(points []coremetrics.StepPoint) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, sp := range points {
		p := write.NewPointWithMeasurement("charging_step").
			AddTag("run_id", sp.RunID).
			AddTag("component", "charging_engine").
			AddField("grid_load_kw", round3(sp.GridLoadKW)).
			AddField("solar_prod_kw", round3(sp.SolarProdKW)).
			AddField("charging_power_kw", round3(sp.ChargingPowerKW)).
			AddField("soc_percent", round3(sp.SoCPercent)).
			SetTime(sp.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordReplayFrame persists an incremental replay update.
func (s *InfluxSink) RecordReplayFrame(ev coremetrics.ReplayFrameEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("replay_frame").
		AddTag("run_id", ev.RunID).
		AddTag("component", "replay").
		AddField("step_limit", ev.StepLimit).
		AddField("soc_percent", round3(ev.SoCPercent)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
