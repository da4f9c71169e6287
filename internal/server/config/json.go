package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fitcoach/internal/flagx"
	"github.com/dmitrijs2005/fitcoach/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations use timex.Duration,
// so "30m" and integer nanoseconds are both accepted.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	DemoUser                    *string        `json:"demo_user"`
	LogLevel                    string         `json:"log_level"`
	LogFormat                   string         `json:"log_format"`
}

// parseJson loads configuration values from the file named by -c or -config
// into config. Without either flag nothing happens. Fields missing from the
// file keep their current value; demo_user may be set to "" explicitly to
// disable the demo account. Read and decode errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.DemoUser != nil {
		config.DemoUser = *c.DemoUser
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
}
