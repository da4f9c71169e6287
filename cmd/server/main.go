package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/fitcoach/internal/buildinfo"
	"github.com/dmitrijs2005/fitcoach/internal/logging"
	"github.com/dmitrijs2005/fitcoach/internal/server"
	"github.com/dmitrijs2005/fitcoach/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.New(os.Stdout, cfg.LogFormat, level)

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
