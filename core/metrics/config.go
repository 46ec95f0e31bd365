package metrics

import "fmt"

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies fallback values for optional fields.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":2112"
	}
}

// Validate checks mandatory fields of the enabled sinks.
func (c Config) Validate() error {
	if c.PrometheusEnabled && c.PrometheusPort == "" {
		return fmt.Errorf("prometheus_port is required")
	}
	if c.InfluxEnabled && c.InfluxURL == "" {
		return fmt.Errorf("influx_url is required")
	}
	return nil
}
