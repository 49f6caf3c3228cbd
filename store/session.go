// Package store holds the in-memory domain state: the authenticated session
// and the course catalog. Each store has a single writer (itself) guarded by
// a mutex; readers get copies. State is not persisted across restarts.
package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"amashuri/gateway"
	"amashuri/models"
)

// Session tracks the single authenticated identity for the current session.
type Session struct {
	gw     gateway.Gateway
	ids    IdentityProvider // optional; resolves demo logins locally
	logger *log.Logger

	mu      sync.RWMutex
	user    *models.UserProfile
	loading bool
	lastErr string
	subs    map[int]func()
	nextSub int
}

func NewSession(gw gateway.Gateway, ids IdentityProvider, logger *log.Logger) *Session {
	return &Session{
		gw:     gw,
		ids:    ids,
		logger: logger,
		subs:   make(map[int]func()),
	}
}

// User returns a copy of the current user, or nil when anonymous.
func (s *Session) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// Err returns the last captured failure as a display string.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers a change listener and returns its unsubscribe func.
// Listeners run synchronously after every state change, outside the lock.
func (s *Session) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SignIn authenticates a credential pair. Identities known to the injected
// provider are resolved locally and never reach the gateway; everything
// else goes through the remote password flow followed by a profile lookup.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	s.setLoading(true)

	if s.ids != nil {
		if profile, ok := s.ids.Lookup(email, password); ok {
			s.setUser(profile)
			return nil
		}
	}

	authUser, err := s.gw.SignInWithPassword(ctx, email, password)
	if err != nil {
		return s.fail(fmt.Errorf("sign in: %w", err))
	}

	profile, err := s.gw.Profile(ctx, authUser.ID)
	if err != nil {
		return s.fail(fmt.Errorf("sign in: %w", err))
	}

	s.setUser(profile)
	return nil
}

// SignUp establishes the session optimistically: the local profile is set
// before the remote registration resolves, so the caller never blocks on
// email confirmation. The remote outcome is delivered on the returned
// channel for the caller to surface asynchronously.
func (s *Session) SignUp(ctx context.Context, email, password, fullName, role string) (<-chan error, error) {
	s.setLoading(true)

	now := time.Now()
	profile := &models.UserProfile{
		ID:        fmt.Sprintf("mock-%s-%d", role, now.UnixMilli()),
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.setUser(profile)

	remote := make(chan error, 1)
	go func() {
		_, err := s.gw.SignUp(ctx, email, password, gateway.SignUpMetadata{
			FullName: fullName,
			Role:     role,
		})
		if err != nil && s.logger != nil {
			s.logger.Printf("remote registration for %s failed: %v", email, err)
		}
		remote <- err
		close(remote)
	}()

	return remote, nil
}

// SignOut ends the remote session and clears the local user. The user is
// cleared even when the gateway call fails; the failure is only recorded.
func (s *Session) SignOut(ctx context.Context) error {
	s.setLoading(true)

	err := s.gw.SignOut(ctx)
	s.setUser(nil)
	if err != nil {
		s.fail(fmt.Errorf("sign out: %w", err))
	}
	return err
}

// CheckSession resolves an existing remote session into a full profile.
// Intended to run once at application start.
func (s *Session) CheckSession(ctx context.Context) error {
	s.setLoading(true)

	sess, err := s.gw.GetSession(ctx)
	if err != nil {
		if err == gateway.ErrNoSession {
			s.setUser(nil)
			return nil
		}
		return s.fail(fmt.Errorf("check session: %w", err))
	}

	profile, err := s.gw.Profile(ctx, sess.UserID)
	if err != nil {
		return s.fail(fmt.Errorf("check session: %w", err))
	}

	s.setUser(profile)
	return nil
}

func (s *Session) setUser(u *models.UserProfile) {
	s.mu.Lock()
	s.user = u
	s.loading = false
	s.lastErr = ""
	subs := s.listeners()
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.lastErr = ""
	}
	s.mu.Unlock()
}

// fail records the error as a display string and passes it back; the user
// is left as it was.
func (s *Session) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.loading = false
	subs := s.listeners()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Printf("session: %v", err)
	}
	for _, fn := range subs {
		fn()
	}
	return err
}

// listeners must be called with the lock held.
func (s *Session) listeners() []func() {
	out := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
