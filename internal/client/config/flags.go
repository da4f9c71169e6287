package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-d string   local database path
//	-t int      request timeout in seconds
//	-i int      health check interval in seconds
//	-l string   log level
//	-f string   log format (text or json)
//	-m string   camera device
//
// -t and -i are whole seconds and only touch the config when given, so a
// sub-second value from JSON survives. Non-positive values are rejected.
//
// os.Args is filtered with flagx.FilterArgs so -c/-config and anything else
// unknown here does not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-i", "-l", "-f", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	interval := fs.Int("i", 0, "health check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")
	fs.StringVar(&cfg.CameraDevice, "m", cfg.CameraDevice, "camera device")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = positiveSeconds("t", *timeout)
		case "i":
			cfg.HealthCheckInterval = positiveSeconds("i", *interval)
		}
	})
}

func positiveSeconds(name string, n int) time.Duration {
	if n <= 0 {
		panic(fmt.Errorf("flag -%s must be a positive number of seconds, got %d", name, n))
	}
	return time.Duration(n) * time.Second
}
