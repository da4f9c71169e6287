package config

import (
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/client/media"
	"github.com/dmitrijs2005/fitcoach/internal/filex"
	"github.com/dmitrijs2005/fitcoach/internal/logging"
)

// Config holds runtime settings for the FitCoach client.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API.
//   - DBPath: SQLite file holding the session token slot.
//   - RequestTimeout: upper bound for a single backend request.
//   - HealthCheckInterval: how often the client probes backend reachability.
//   - LogLevel, LogFormat: see logging.ParseLevel and logging.NewHandler.
//   - CameraDevice: video device used by the live workout page.
type Config struct {
	APIBaseURL          string
	DBPath              string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	LogLevel            string
	LogFormat           string
	CameraDevice        string
}

const (
	DefaultRequestTimeout      = 10 * time.Second
	DefaultHealthCheckInterval = 5 * time.Second
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DBPath = filex.DefaultDataPath("client.db")
	c.RequestTimeout = DefaultRequestTimeout
	c.HealthCheckInterval = DefaultHealthCheckInterval
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
	c.CameraDevice = media.DefaultDevicePath
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

// normalize replaces non-positive durations with the defaults. A zero
// interval would stop the health ticker from starting at all.
func (c *Config) normalize() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.HealthCheckInterval <= 0 {
		c.HealthCheckInterval = DefaultHealthCheckInterval
	}
}
