// Package session models the authenticated-user state shared by every page:
// a session starts out resolving, settles on authenticated or anonymous, and
// is torn down wholesale on sign-out.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/types"
)

// State is the lifecycle state of a Session.
type State int

// Session states.
const (
	Resolving State = iota
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session holds the identity of the current user. Components read it; only
// Resolve and SignOut change it.
type Session struct {
	mu       sync.RWMutex
	state    State
	user     *types.User
	teardown []func()
}

// New returns a session in the Resolving state.
func New() *Session {
	return &Session{state: Resolving}
}

// NewAuthenticated returns a session already resolved to user.
func NewAuthenticated(user *types.User) *Session {
	s := New()
	s.Resolve(user)
	return s
}

// NewAnonymous returns a session already resolved to no user.
func NewAnonymous() *Session {
	s := New()
	s.Resolve(nil)
	return s
}

// Resolve completes resolution. A nil user yields Anonymous.
func (s *Session) Resolve(user *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.state = Anonymous
		s.user = nil
		return
	}
	copied := *user
	s.state = Authenticated
	s.user = &copied
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether resolution is still in progress.
func (s *Session) Loading() bool {
	return s.State() == Resolving
}

// User returns a copy of the authenticated user.
func (s *Session) User() (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated || s.user == nil {
		return types.User{}, false
	}
	return *s.user, true
}

// UserID returns the authenticated user's id.
func (s *Session) UserID() (uuid.UUID, bool) {
	u, ok := s.User()
	if !ok {
		return uuid.Nil, false
	}
	return u.ID, true
}

// OnSignOut registers fn to clear state that depends on the identity.
// Hooks run once, in registration order, on SignOut.
func (s *Session) OnSignOut(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardown = append(s.teardown, fn)
}

// SignOut invalidates the identity and runs the teardown hooks.
func (s *Session) SignOut() {
	s.mu.Lock()
	hooks := s.teardown
	s.teardown = nil
	s.state = Anonymous
	s.user = nil
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, or an anonymous session.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok && s != nil {
		return s
	}
	return NewAnonymous()
}
