package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coremetrics "github.com/kilianp07/chargesim/core/metrics"
	"github.com/kilianp07/chargesim/infra/mqtt"
)

// Config is the whole simulator configuration.
type Config struct {
	Profile ProfileConfig      `json:"profile"`
	Charger ChargerConfig      `json:"charger"`
	Replay  ReplayConfig       `json:"replay"`
	Logging LoggingConfig      `json:"logging"`
	Metrics coremetrics.Config `json:"metrics"`
	MQTT    mqtt.Config        `json:"mqtt"`
}

// Default returns a configuration with every section at its defaults.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// Load reads the configuration file, applies CS_-prefixed environment
// overrides, then defaults and per-section validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. CS_CHARGER__MAX_POWER_KW. The
	// callback rewrites "__" to the koanf "." delimiter, so the provider
	// must split on "." to nest the keys under their sections.
	if err := k.Load(env.Provider("CS_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	c.Profile.SetDefaults()
	c.Charger.SetDefaults()
	c.Replay.SetDefaults()
	c.Logging.SetDefaults()
	c.Metrics.SetDefaults()
	c.MQTT.SetDefaults()
}

func (c *Config) validate() error {
	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := c.Charger.Validate(); err != nil {
		return fmt.Errorf("charger: %w", err)
	}
	if err := c.Replay.Validate(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := c.MQTT.Validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	return nil
}
