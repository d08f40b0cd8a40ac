package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `api:
  base_url: "http://127.0.0.1:5000"
  timeout_seconds: 3
form:
  nearby_metro: ["Yes", "No", "Planned"]
logging:
  level: "debug"
metrics:
  prometheus_enabled: true
  prometheus_port: ":9200"
mock:
  address: ":7000"
  locations: ["Whitefield"]
  estimated_price_lakhs: 42
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
		{"base_url", cfg.API.BaseURL, "http://127.0.0.1:5000"},
		{"timeout_seconds", cfg.API.TimeoutSeconds, 3},
		{"nearby_metro", len(cfg.Form.NearbyMetro), 3},
		{"area_types default", len(cfg.Form.AreaTypes), 4},
		{"level", cfg.Logging.Level, "debug"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_port", cfg.Metrics.PrometheusPort, ":9200"},
		{"mock.address", cfg.Mock.Address, ":7000"},
		{"mock.locations", len(cfg.Mock.Locations), 1},
		{"mock.price", cfg.Mock.EstimatedPriceLakhs, 42.0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"api":{"base_url":"https://example.org/"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/", cfg.API.BaseURL)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.TimeoutSeconds)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":9100", cfg.Metrics.PrometheusPort)
	assert.Equal(t, ":5000", cfg.Mock.Address)
	assert.Equal(t, []string{"auto", "New", "Mid", "Old"}, cfg.Form.AgeSegments)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BHP_API__BASE_URL", "http://localhost:8080")
	t.Setenv("BHP_API__TIMEOUT_SECONDS", "7")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 7, cfg.API.TimeoutSeconds)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"bad url":    "api:\n  base_url: \"localhost:5000/x\"\n",
		"negative":   "api:\n  timeout_seconds: -1\n",
		"bad level":  "logging:\n  level: \"loud\"\n",
		"influx":     "metrics:\n  influx_enabled: true\n  influx_url: \"http://influx:8086\"\n",
		"mock price": "mock:\n  estimated_price_lakhs: -3\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", data))
			assert.Error(t, err)
		})
	}
	_, err := Load(writeFile(t, "config.toml", ""))
	assert.Error(t, err)
}
