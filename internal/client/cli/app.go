package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
	"github.com/dmitrijs2005/fitcoach/internal/client/config"
	"github.com/dmitrijs2005/fitcoach/internal/client/media"
	"github.com/dmitrijs2005/fitcoach/internal/client/models"
	"github.com/dmitrijs2005/fitcoach/internal/client/repositories/journal"
	"github.com/dmitrijs2005/fitcoach/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fitcoach/internal/client/session"
	"github.com/dmitrijs2005/fitcoach/internal/client/shell"
	"github.com/dmitrijs2005/fitcoach/internal/client/storage"
	"github.com/dmitrijs2005/fitcoach/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const demoHint = "Demo credentials: demo / demo123"

// journalStore keeps mood journal entries across runs.
type journalStore interface {
	Save(ctx context.Context, e *models.JournalEntry) error
	Recent(ctx context.Context, username string, limit int) ([]models.JournalEntry, error)
}

type App struct {
	config  *config.Config
	log     logging.Logger
	api     client.Client
	session *session.Manager
	router  *shell.Router
	journal journalStore
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	closeFn func() error

	mu   sync.Mutex
	mode Mode

	// pagesMu guards swapping page state, which Close may observe from
	// outside the REPL goroutine.
	pagesMu sync.Mutex
	pages   *pageSet
}

// NewApp opens the local token store and wires the HTTP client, session
// manager, router and pages.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	slot := metadata.NewTokenSlot(metadata.NewSQLiteStore(db))
	cam := media.V4L2Device{Path: c.CameraDevice}

	a := newApp(c, log, api, slot, cam, bufio.NewReader(os.Stdin), os.Stdout)
	a.journal = journal.NewStore(db, journal.DefaultKeep)
	a.closeFn = db.Close
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, store session.TokenStore,
	cam media.Device, in *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		log:     log,
		api:     api,
		session: session.NewManager(api, store, log),
		router:  shell.NewRouter(),
		pages:   newPageSet(cam),
		reader:  in,
		out:     out,
		now:     time.Now,
	}
	a.router.OnLeave(a.leavePage)
	return a
}

// leavePage releases whatever the unmounted page holds and drops its local
// state, so the next visit starts fresh.
func (a *App) leavePage(p shell.Page) {
	a.pagesMu.Lock()
	defer a.pagesMu.Unlock()

	if p == shell.PageWorkout {
		a.releaseCamera()
	}
	a.pages.reset(p)
}

// releaseCamera stops the workout stream. Callers hold pagesMu.
func (a *App) releaseCamera() {
	if err := a.pages.workout.Stop(); err != nil {
		a.log.Warn(context.Background(), "failed to release camera", "err", err)
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.router.State().Status == shell.Authenticated
}

// Run restores a saved session if there is one, then serves the REPL until
// the user exits or ctx is cancelled. The connectivity watcher runs
// alongside.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to FitCoach (type 'help' for commands)")
	a.bootstrap(ctx)
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, demoHint)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.StartOnlineStatusWatcher(gctx, a.config.HealthCheckInterval)
		return nil
	})

	// The REPL blocks on stdin and cannot observe cancellation while it
	// waits, so it runs outside the group and only signals completion.
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(gctx, a, a.getStatus, a.reader)
	}()

	g.Go(func() error {
		select {
		case <-done:
		case <-gctx.Done():
		}
		cancel()
		return nil
	})

	return g.Wait()
}

// bootstrap runs the startup session check. Failures only leave the user
// on the authentication screen.
func (a *App) bootstrap(ctx context.Context) {
	res, err := a.session.Bootstrap(ctx)
	if err != nil {
		a.log.Error(ctx, "session bootstrap failed", "err", err)
	}

	switch res {
	case session.BootstrapRestored:
		if err := a.router.SignIn(a.session.Current()); err != nil {
			a.log.Error(ctx, "sign in after bootstrap", "err", err)
			return
		}
		_ = a.Show(ctx)
	case session.BootstrapUnreachable:
		fmt.Fprintln(a.out, "Backend unreachable, your saved session was kept. Type 'resume' to retry.")
	}
}

// Close releases the camera and the local store. The stored token is kept.
func (a *App) Close() error {
	a.pagesMu.Lock()
	a.releaseCamera()
	a.pagesMu.Unlock()

	if a.closeFn != nil {
		return a.closeFn()
	}
	return nil
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.api.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

// StartOnlineStatusWatcher checks the backend health endpoint once right
// away and then every interval until ctx is done. A non-positive interval
// falls back to config.DefaultHealthCheckInterval.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.log.Warn(ctx, "invalid health check interval, using default",
			"interval", interval, "default", config.DefaultHealthCheckInterval)
		interval = config.DefaultHealthCheckInterval
	}

	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
