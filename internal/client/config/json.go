package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fitcoach/internal/flagx"
	"github.com/dmitrijs2005/fitcoach/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so they may be written as "3s" or as nanoseconds.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	DBPath              string         `json:"db_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	LogLevel            string         `json:"log_level"`
	LogFormat           string         `json:"log_format"`
	CameraDevice        string         `json:"camera_device"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without either flag it does nothing. Fields absent from the file
// keep their current value. Read and decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.CameraDevice, jc.CameraDevice)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HealthCheckInterval.Duration > 0 {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
