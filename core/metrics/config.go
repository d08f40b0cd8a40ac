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

// SetDefaults fills the Prometheus listen address.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9100"
	}
}

// Validate checks that enabled sinks are fully configured.
func (c Config) Validate() error {
	if !c.InfluxEnabled {
		return nil
	}
	missing := map[string]string{
		"influx_url":    c.InfluxURL,
		"influx_token":  c.InfluxToken,
		"influx_org":    c.InfluxOrg,
		"influx_bucket": c.InfluxBucket,
	}
	for _, k := range []string{"influx_url", "influx_token", "influx_org", "influx_bucket"} {
		if missing[k] == "" {
			return fmt.Errorf("metrics.%s is required when influx is enabled", k)
		}
	}
	return nil
}
