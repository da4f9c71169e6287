// Package server wires the development backend: an in-memory user store,
// the auth service and the HTTP API, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrijs2005/fitcoach/internal/logging"
	"github.com/dmitrijs2005/fitcoach/internal/server/config"
	"github.com/dmitrijs2005/fitcoach/internal/server/httpapi"
	"github.com/dmitrijs2005/fitcoach/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(c *config.Config, l logging.Logger) (*App, error) {
	us := users.NewService(users.NewMemoryRepository(), c)
	return &App{config: c, logger: l, userService: us}, nil
}

// seedDemoUser creates the account named by DemoUser ("name:password").
func (app *App) seedDemoUser(ctx context.Context) error {
	if app.config.DemoUser == "" {
		return nil
	}
	name, password, ok := strings.Cut(app.config.DemoUser, ":")
	if !ok || name == "" || password == "" {
		return fmt.Errorf("invalid demo user %q, expected name:password", app.config.DemoUser)
	}
	if err := app.userService.Seed(ctx, name, []byte(password)); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	app.logger.Info(ctx, "Demo account ready", "username", name)
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the API until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if err := app.seedDemoUser(ctx); err != nil {
		return err
	}

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.userService)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	app.logger.Info(context.Background(), "Stopped")
	return nil
}
