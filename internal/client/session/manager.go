package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
	"github.com/dmitrijs2005/fitcoach/internal/logging"
)

var (
	// ErrBusy is returned when Login or Signup is called while another
	// authentication request is still outstanding.
	ErrBusy = errors.New("authentication already in progress")
	// ErrNoSession is returned by authenticated operations without a session.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired means the backend rejected the token during an
	// authenticated operation; the session has been torn down.
	ErrSessionExpired = errors.New("session expired")
)

// TokenStore is the durable slot holding the bearer token.
// Load returns "" when the slot is empty.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type BootstrapResult int

const (
	// BootstrapNoSession: no stored token, nothing was sent.
	BootstrapNoSession BootstrapResult = iota
	// BootstrapRestored: the stored token was confirmed, the session is active.
	BootstrapRestored
	// BootstrapRejected: the backend rejected the token, it was deleted.
	BootstrapRejected
	// BootstrapUnreachable: no answer from the backend, the token was kept.
	BootstrapUnreachable
)

func (r BootstrapResult) String() string {
	switch r {
	case BootstrapNoSession:
		return "no_session"
	case BootstrapRestored:
		return "restored"
	case BootstrapRejected:
		return "rejected"
	case BootstrapUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("BootstrapResult(%d)", int(r))
	}
}

type Manager struct {
	api   client.Client
	store TokenStore
	log   logging.Logger

	mu    sync.RWMutex
	token string
	user  *client.User

	busy atomic.Bool
}

func NewManager(api client.Client, store TokenStore, log logging.Logger) *Manager {
	return &Manager{api: api, store: store, log: log.With("component", "session")}
}

// Current returns the authenticated user, or nil when no session is active.
func (m *Manager) Current() *client.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Manager) Active() bool {
	return m.Current() != nil
}

// Token returns the bearer token of the active session, or "".
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Busy reports whether a Login or Signup call is outstanding.
func (m *Manager) Busy() bool {
	return m.busy.Load()
}

// TokenExpiry reports the expiry encoded in the active token, if any.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	return tokenExpiry(m.Token())
}

// Bootstrap tries to restore a session from the stored token. The returned
// error is reserved for local storage failures; every network outcome is
// expressed through BootstrapResult.
func (m *Manager) Bootstrap(ctx context.Context) (BootstrapResult, error) {
	token, err := m.store.Load(ctx)
	if err != nil {
		return BootstrapNoSession, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		m.log.Debug(ctx, "no stored token")
		return BootstrapNoSession, nil
	}
	if exp, ok := tokenExpiry(token); ok {
		m.log.Debug(ctx, "stored token found", "expires_at", exp)
	}

	user, err := m.api.Me(ctx, token)
	if err == nil {
		m.set(token, user)
		m.log.Info(ctx, "session restored", "user", user.Username)
		return BootstrapRestored, nil
	}

	m.set("", nil)

	if _, rejected := client.IsRejected(err); !rejected {
		m.log.Warn(ctx, "identity check did not complete, keeping stored token", "err", err)
		return BootstrapUnreachable, nil
	}

	m.log.Info(ctx, "stored token rejected", "err", err)
	if err := m.store.Clear(ctx); err != nil {
		return BootstrapRejected, fmt.Errorf("clear token: %w", err)
	}
	return BootstrapRejected, nil
}

func (m *Manager) Login(ctx context.Context, creds client.Credentials) (*client.User, error) {
	return m.authenticate(ctx, "login", m.api.Login, creds)
}

func (m *Manager) Signup(ctx context.Context, creds client.Credentials) (*client.User, error) {
	return m.authenticate(ctx, "signup", m.api.Signup, creds)
}

type issueFunc func(ctx context.Context, creds client.Credentials) (string, error)

// authenticate obtains a token, persists it and confirms the identity. If
// the confirmation fails the fresh token is removed again, so token and
// user never exist independently.
func (m *Manager) authenticate(ctx context.Context, op string, issue issueFunc, creds client.Credentials) (*client.User, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer m.busy.Store(false)

	token, err := issue(ctx, creds)
	if err != nil {
		m.log.Info(ctx, op+" failed", "user", creds.Username, "err", err)
		return nil, err
	}

	if err := m.store.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		m.log.Warn(ctx, op+" succeeded but identity check failed", "user", creds.Username, "err", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to drop unconfirmed token", "err", cerr)
		}
		return nil, fmt.Errorf("confirm identity: %w", err)
	}

	m.set(token, user)
	m.log.Info(ctx, op+" succeeded", "user", user.Username)
	return user, nil
}

// Logout drops the stored token and the current user. It cannot fail from
// the caller's point of view; a storage error is only logged.
func (m *Manager) Logout(ctx context.Context) {
	user := m.Current()
	m.set("", nil)
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored token", "err", err)
	}
	if user != nil {
		m.log.Info(ctx, "logged out", "user", user.Username)
	}
}

// UpdateProfile sends upd with the session token and reloads the user
// record. A 401/403 on either call ends the session (ErrSessionExpired).
func (m *Manager) UpdateProfile(ctx context.Context, upd client.ProfileUpdate) (*client.User, error) {
	token := m.Token()
	if token == "" {
		return nil, ErrNoSession
	}

	if err := m.api.UpdateProfile(ctx, token, upd); err != nil {
		return nil, m.checkExpired(ctx, err)
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		return nil, m.checkExpired(ctx, err)
	}

	m.mu.Lock()
	if m.token == token {
		m.user = user
	}
	m.mu.Unlock()
	return user, nil
}

func (m *Manager) checkExpired(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		m.log.Info(ctx, "token rejected during authenticated call")
		m.Logout(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return err
}

func (m *Manager) set(token string, user *client.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user
}
