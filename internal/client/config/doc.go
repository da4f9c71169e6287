// Package config loads runtime configuration for the FitCoach client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, including an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   local database path
//	-t int      request timeout (seconds)
//	-i int      health check interval (seconds)
//	-l string   log level
//	-f string   log format
//	-m string   camera device
//
// Environment
//
//	FITCOACH_API_URL, FITCOACH_DB_PATH, FITCOACH_CAMERA, LOG_LEVEL, LOG_FORMAT
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "db_path": "/home/me/.config/fitcoach/client.db",
//	  "request_timeout": "10s",
//	  "health_check_interval": "5s",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "camera_device": "/dev/video0"
//	}
package config
