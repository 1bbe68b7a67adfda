package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"bite-sized-learning-go/internal/catalog"
	"bite-sized-learning-go/internal/creator"
	"bite-sized-learning-go/internal/engagement"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one learner's working context. Its State and Drafts must only
// be touched inside Manager.With.
type Session struct {
	ID        string
	CreatedAt time.Time
	State     *engagement.State
	Drafts    *creator.Drafts

	mu       sync.Mutex
	lastSeen atomic.Int64
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Manager owns every live session. Sessions never share state.
type Manager struct {
	catalog *catalog.Catalog
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
	onEnd   func(id string)

	mu       sync.RWMutex
	sessions map[string]*Session
}

type ManagerOption func(*Manager)

// WithOnEnd registers fn to run after a session is ended or expired, outside
// the manager's lock
func WithOnEnd(fn func(id string)) ManagerOption {
	return func(m *Manager) { m.onEnd = fn }
}

func NewManager(cat *catalog.Catalog, ttl time.Duration, logger *slog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		catalog:  cat,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		onEnd:    func(string) {},
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a session seeded from the catalog's learner profile
func (m *Manager) Create() *Session {
	profile := m.catalog.Profile()
	now := m.now()

	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		State:     engagement.NewState(m.catalog, profile.BaseXP, profile.SavedItemIDs),
		Drafts:    creator.NewDrafts(),
	}
	s.touch(now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug("session started", "session_id", s.ID)
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// With runs fn while holding the session's lock, so a session handles one
// interaction at a time
func (m *Manager) With(id string, fn func(*Session) error) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(m.now())

	return fn(s)
}

// End discards a session and everything it recorded
func (m *Manager) End(id string) error {
	m.mu.Lock()
	if _, ok := m.sessions[id]; !ok {
		m.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	m.logger.Debug("session ended", "session_id", id)
	m.onEnd(id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were dropped
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	var expired []string
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		m.onEnd(id)
	}
	return len(expired)
}

// Run sweeps on every tick until ctx is cancelled
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Info("expired idle sessions", "count", n, "active", m.Len())
			}
		}
	}
}
