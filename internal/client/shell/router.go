// Package shell holds the presentation state of the client: whether a user
// session is present and which page is mounted. It does no network or
// storage access of its own.
package shell

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownPage      = errors.New("unknown page")
	ErrNilUser          = errors.New("sign-in requires a user")
)

type Status int

const (
	Unauthenticated Status = iota
	Authenticated
)

func (s Status) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// State is a snapshot of the router. User and Page are meaningful only
// when Status == Authenticated.
type State struct {
	Status     Status
	User       *client.User
	Page       Page
	Generation uint64
}

// LeaveFunc is called when page p is unmounted, either by navigating to
// another page or by signing out.
type LeaveFunc func(p Page)

// Router is the two-state machine Unauthenticated / Authenticated(user, page).
//
// Generation increases on every top-level transition. Page-local work that
// outlives a transition compares its generation with IsCurrent and drops
// its result when they differ.
type Router struct {
	mu    sync.Mutex
	state State
	leave []LeaveFunc
}

func NewRouter() *Router {
	return &Router{state: State{Status: Unauthenticated}}
}

// OnLeave registers fn to run whenever a page is unmounted.
func (r *Router) OnLeave(fn LeaveFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leave = append(r.leave, fn)
}

func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Router) Generation() uint64 {
	return r.State().Generation
}

// IsCurrent reports whether a result produced under gen may still be shown.
func (r *Router) IsCurrent(gen uint64) bool {
	s := r.State()
	return s.Status == Authenticated && s.Generation == gen
}

// SignIn moves to Authenticated with the default page. Calling it while
// already authenticated starts a new session (new generation, page reset).
func (r *Router) SignIn(user *client.User) error {
	if user == nil {
		return ErrNilUser
	}

	r.mu.Lock()
	prev := r.state
	r.state = State{
		Status:     Authenticated,
		User:       user,
		Page:       DefaultPage,
		Generation: prev.Generation + 1,
	}
	hooks := r.leave
	r.mu.Unlock()

	if prev.Status == Authenticated {
		runLeave(hooks, prev.Page)
	}
	return nil
}

// SignOut moves to Unauthenticated. The mounted page is unmounted first.
func (r *Router) SignOut() {
	r.mu.Lock()
	prev := r.state
	if prev.Status == Unauthenticated {
		r.mu.Unlock()
		return
	}
	r.state = State{Status: Unauthenticated, Generation: prev.Generation + 1}
	hooks := r.leave
	r.mu.Unlock()

	runLeave(hooks, prev.Page)
}

// Navigate mounts page p. It never changes the top-level status.
func (r *Router) Navigate(p Page) error {
	if !p.Valid() {
		return ErrUnknownPage
	}

	r.mu.Lock()
	if r.state.Status != Authenticated {
		r.mu.Unlock()
		return ErrNotAuthenticated
	}
	prev := r.state.Page
	r.state.Page = p
	hooks := r.leave
	r.mu.Unlock()

	if prev != p {
		runLeave(hooks, prev)
	}
	return nil
}

// UpdateUser replaces the user record of the current session, e.g. after a
// profile change. It is a no-op when unauthenticated.
func (r *Router) UpdateUser(user *client.User) {
	if user == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Status == Authenticated {
		r.state.User = user
	}
}

func runLeave(hooks []LeaveFunc, p Page) {
	for _, fn := range hooks {
		fn(p)
	}
}
