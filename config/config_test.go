package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `profile:
  horizon_steps: 720
  seed: 7
charger:
  battery_capacity_kwh: 40
  initial_soc: 0.5
  max_power_kw: 11
replay:
  chunk_steps: 30
  interval_ms: 250
logging:
  level: debug
metrics:
  prometheus_enabled: true
mqtt:
  enabled: true
  broker: "tcp://localhost:1883"
  client_id: "cli"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"horizon_steps", cfg.Profile.HorizonSteps, 720},
		{"seed", cfg.Profile.Seed, int64(7)},
		{"start default", cfg.Profile.Start, "2025-05-12T00:00:00Z"},
		{"battery_capacity_kwh", cfg.Charger.BatteryCapacityKWh, 40.0},
		{"initial_soc", cfg.Charger.InitialSoC, 0.5},
		{"max_power_kw", cfg.Charger.MaxPowerKW, 11.0},
		{"chunk_steps", cfg.Replay.ChunkSteps, 30},
		{"interval_ms", cfg.Replay.IntervalMS, 250},
		{"level", cfg.Logging.Level, "debug"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_port default", cfg.Metrics.PrometheusPort, ":2112"},
		{"broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"client_id", cfg.MQTT.ClientID, "cli"},
		{"lwt default", cfg.MQTT.LWTTopic, "chargesim/status"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "charger:\n  initial_soc: 0.3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Profile.HorizonSteps != 1440 || cfg.Profile.Seed != 42 {
		t.Errorf("profile defaults not applied: %+v", cfg.Profile)
	}
	if cfg.Charger.BatteryCapacityKWh != 60 || cfg.Charger.MaxPowerKW != 22 {
		t.Errorf("charger defaults not applied: %+v", cfg.Charger)
	}
	if cfg.Charger.InitialSoC != 0.3 {
		t.Errorf("explicit value overridden: %v", cfg.Charger.InitialSoC)
	}
	if cfg.Replay.ChunkSteps != 60 || cfg.Replay.IntervalMS != 500 {
		t.Errorf("replay defaults not applied: %+v", cfg.Replay)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging default not applied: %v", cfg.Logging.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "charger:\n  max_power_kw: 22\n")
	t.Setenv("CS_CHARGER__MAX_POWER_KW", "11")
	t.Setenv("CS_PROFILE__SEED", "99")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Charger.MaxPowerKW != 11 {
		t.Errorf("env override not applied: %v", cfg.Charger.MaxPowerKW)
	}
	if cfg.Profile.Seed != 99 {
		t.Errorf("env override not nested under its section: %v", cfg.Profile.Seed)
	}
}

func TestLoadRejectsInvalidSection(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"negative capacity", "charger:\n  battery_capacity_kwh: -5\n"},
		{"soc above one", "charger:\n  initial_soc: 1.5\n"},
		{"bad level", "logging:\n  level: verbose\n"},
		{"bad start", "profile:\n  start: yesterday\n"},
		{"mqtt without broker", "mqtt:\n  enabled: true\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, "config.yaml", c.data)
			if _, err := Load(path); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", "")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
