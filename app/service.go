package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/chargesim/config"
	"github.com/kilianp07/chargesim/core/charging"
	coremetrics "github.com/kilianp07/chargesim/core/metrics"
	"github.com/kilianp07/chargesim/core/model"
	"github.com/kilianp07/chargesim/core/profile"
	"github.com/kilianp07/chargesim/infra/logger"
	"github.com/kilianp07/chargesim/infra/metrics"
	"github.com/kilianp07/chargesim/infra/mqtt"
	"github.com/kilianp07/chargesim/internal/eventbus"
)

// Service wires the profile generator, the charging engine and the
// observability sinks according to the configuration.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	gen    *profile.Generator
	engine *charging.Engine
	sink   coremetrics.MetricsSink
	bus    *eventbus.TypedBus[model.ReplayFrame]
	pub    *mqtt.Publisher
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Pretty); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var pub *mqtt.Publisher
	if cfg.MQTT.Enabled {
		p, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		pub = p
	}

	return &Service{
		cfg:    cfg,
		log:    logg,
		gen:    profile.New(cfg.Profile),
		engine: charging.New(logger.New("engine")),
		sink:   sink,
		bus:    eventbus.NewTyped[model.ReplayFrame](),
		pub:    pub,
	}, nil
}

// RunOnce generates a fresh profile and simulates the first stepLimit steps,
// the whole horizon when stepLimit is 0. The run is recorded on the metrics
// sinks and the summary published when MQTT is enabled.
func (s *Service) RunOnce(stepLimit int) (model.RunResult, model.Summary, error) {
	series := s.gen.Generate()
	limit := stepLimit
	if limit <= 0 {
		limit = len(series)
	}
	res, err := s.engine.RunSteps(series, s.cfg.Charger.Params(), limit)
	if err != nil {
		return model.RunResult{}, model.Summary{}, err
	}
	sum := charging.Summarize(res)
	runID := uuid.NewString()
	s.record(runID, res)
	if s.pub != nil {
		if err := s.pub.PublishSummary(runID, sum); err != nil {
			s.log.Errorf("publish summary: %v", err)
		}
	}
	s.log.Infow("run finished", map[string]any{
		"run_id":            runID,
		"battery_full":      res.BatteryFull,
		"completion_time":   res.CompletionTime,
		"final_soc_percent": sum.FinalSoCPercent,
		"energy_kwh":        sum.EnergyDeliveredKWh,
	})
	return res, sum, nil
}

// Replay drives the incremental display loop: every update regenerates the
// profile, reruns the engine from step zero with a larger limit and emits
// the resulting frame. Recomputing instead of resuming keeps each engine
// call independent and idempotent.
func (s *Service) Replay(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	metrics.StartFrameCollector(ctx, s.bus, s.sink)
	if s.pub != nil {
		sub := s.bus.Subscribe()
		go func() {
			for f := range sub {
				if err := s.pub.PublishFrame(f); err != nil {
					s.log.Errorf("publish frame: %v", err)
				}
			}
		}()
	}

	runID := uuid.NewString()
	params := s.cfg.Charger.Params()
	horizon := s.cfg.Profile.HorizonSteps
	limit := s.cfg.Replay.ChunkSteps
	if limit > horizon {
		limit = horizon
	}
	var res model.RunResult
	for {
		series := s.gen.Generate()
		r, err := s.engine.RunSteps(series, params, limit)
		if err != nil {
			return err
		}
		res = r
		s.bus.Publish(model.NewReplayFrame(runID, limit, res))
		if limit >= horizon || (res.BatteryFull && !s.cfg.Replay.RunToEnd) {
			break
		}
		limit += s.cfg.Replay.ChunkSteps
		if limit > horizon {
			limit = horizon
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.Replay.Interval()):
		}
	}

	s.record(runID, res)
	sum := charging.Summarize(res)
	if s.pub != nil {
		if err := s.pub.PublishSummary(runID, sum); err != nil {
			s.log.Errorf("publish summary: %v", err)
		}
	}
	s.log.Infow("replay finished", map[string]any{
		"run_id":            runID,
		"battery_full":      res.BatteryFull,
		"simulated_steps":   res.SimulatedSteps,
		"final_soc_percent": sum.FinalSoCPercent,
	})
	return nil
}

// record forwards the run to the configured sinks.
func (s *Service) record(runID string, res model.RunResult) {
	p := s.cfg.Charger.Params()
	ev := coremetrics.RunEvent{
		RunID:           runID,
		CapacityKWh:     p.BatteryCapacityKWh,
		InitialSoC:      p.InitialSoC,
		MaxPowerKW:      p.MaxPowerKW,
		SimulatedSteps:  res.SimulatedSteps,
		CompletionIndex: res.CompletionIndex,
		CompletionTime:  res.CompletionTime,
		BatteryFull:     res.BatteryFull,
		FinalSoCPercent: res.FinalSoCPercent(),
		Time:            time.Now(),
	}
	if err := s.sink.RecordRun(ev); err != nil {
		s.log.Errorf("record run: %v", err)
	}
	rec, ok := s.sink.(coremetrics.StepRecorder)
	if !ok {
		return
	}
	points := make([]coremetrics.StepPoint, len(res.Steps))
	for i, st := range res.Steps {
		points[i] = coremetrics.StepPoint{
			RunID:           runID,
			Index:           i,
			GridLoadKW:      st.GridLoadKW,
			SolarProdKW:     st.SolarProdKW,
			ChargingPowerKW: st.ChargingPowerKW,
			SoCPercent:      st.SoCPercent,
			Time:            st.Time,
		}
	}
	if err := rec.RecordSteps(points); err != nil {
		s.log.Errorf("record steps: %v", err)
	}
}

// Close releases the frame bus and the broker connection.
func (s *Service) Close() error {
	s.bus.Close()
	if s.pub != nil {
		s.pub.Close()
	}
	return nil
}
