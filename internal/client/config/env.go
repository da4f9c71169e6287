package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL    = "FITCOACH_API_URL"
	EnvDBPath    = "FITCOACH_DB_PATH"
	EnvCamera    = "FITCOACH_CAMERA"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	set(&cfg.APIBaseURL, EnvAPIURL)
	set(&cfg.DBPath, EnvDBPath)
	set(&cfg.CameraDevice, EnvCamera)
	set(&cfg.LogLevel, EnvLogLevel)
	set(&cfg.LogFormat, EnvLogFormat)
}
