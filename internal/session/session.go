// Package session keeps one mode provider per page load. Nothing here is
// persisted: a fresh load always gets a new session in the default mode.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/jianifeng/folio/internal/logger"
	"github.com/jianifeng/folio/internal/mode"
	"github.com/jianifeng/folio/internal/render"
)

// Session is the state of one page load.
type Session struct {
	ID       string
	Provider *mode.Provider
	Document *render.Document

	created  time.Time
	lastSeen time.Time
	cancel   func()
}

// Context scopes ctx to the session's provider.
func (s *Session) Context(ctx context.Context) context.Context {
	return mode.WithProvider(ctx, s.Provider)
}

// Registry holds live sessions and drops them after ttl without a request.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	log      *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(ttl time.Duration, log *logger.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Create starts a session. Its document class follows every toggle of its
// provider.
func (r *Registry) Create() (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	provider := mode.NewProvider()
	doc := render.NewDocument()
	doc.ApplyMode(provider.Mode())
	cancel := provider.Subscribe(func(m mode.Mode) {
		doc.ApplyMode(m)
	})

	now := r.now()
	s := &Session{
		ID:       id,
		Provider: provider,
		Document: doc,
		created:  now,
		lastSeen: now,
		cancel:   cancel,
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	r.log.With("session", id).Debug("session created")
	return s, nil
}

// Get returns a live session and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.expired(s, r.now()) {
		r.remove(s)
		return nil, false
	}
	s.lastSeen = r.now()
	return s, true
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for _, s := range r.sessions {
		if r.expired(s, now) {
			r.remove(s)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.With("removed", n, "live", r.Len()).Debug("sessions swept")
			}
		}
	}
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

// remove must be called with mu held.
func (r *Registry) remove(s *Session) {
	s.cancel()
	delete(r.sessions, s.ID)
}

func newID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
