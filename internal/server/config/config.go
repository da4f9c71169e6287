// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the development backend.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - DemoUser: "name:password" account created at startup; empty disables it.
//   - LogLevel / LogFormat: see logging.ParseLevel and logging.NewHandler.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	DemoUser                    string
	LogLevel                    string
	LogFormat                   string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.DemoUser = "demo:demo123"
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
