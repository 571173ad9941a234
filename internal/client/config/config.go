// Package config handles configuration for the intake client, including
// defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds runtime settings for the intake client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the record-store HTTP API.
//   - GapPolicy: employment-gap policy, "grace" (default) or "strict".
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerEndpointAddr string        `env:"INTAKE_SERVER_ADDR"`
	GapPolicy          string        `env:"INTAKE_GAP_POLICY"`
	RequestTimeout     time.Duration `env:"INTAKE_REQUEST_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.GapPolicy = "grace"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
