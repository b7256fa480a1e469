package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"question-paper/internal/cache"
	"question-paper/internal/domain"
	"question-paper/internal/paper"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 12 * time.Hour

// WorkspaceFactory creates an empty workspace for a new session.
type WorkspaceFactory func() *paper.Workspace

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager owns the live sessions.
type Manager struct {
	factory WorkspaceFactory
	store   domain.Cache
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
	restore  singleflight.Group
}

// Option configures a Manager.
type Option func(*Manager)

// WithCache enables snapshot write-through to store.
func WithCache(store domain.Cache) Option {
	return func(m *Manager) { m.store = store }
}

// WithTTL sets the idle lifetime of sessions and of their snapshots.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(factory WorkspaceFactory, opts ...Option) *Manager {
	m := &Manager{
		factory:  factory,
		ttl:      DefaultTTL,
		logger:   zap.NewNop(),
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Persistent reports whether snapshots are written through to a cache.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Ping checks the snapshot cache. A memory-only manager is always ready.
func (m *Manager) Ping(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping session cache: %w", err)
	}
	return nil
}

// Get returns the session id from memory, or restores it from the cache.
func (m *Manager) Get(ctx context.Context, id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	if s, ok := m.touch(id); ok {
		return s, true
	}
	if m.store == nil {
		return nil, false
	}

	v, _, _ := m.restore.Do(id, func() (interface{}, error) {
		if s, ok := m.touch(id); ok {
			return s, nil
		}
		s := m.load(ctx, id)
		if s == nil {
			return nil, nil
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if e, ok := m.sessions[id]; ok {
			return e.session, nil
		}
		m.sessions[id] = &entry{session: s, lastSeen: m.now()}
		return s, nil
	})
	s, ok := v.(*Session)
	return s, ok && s != nil
}

// GetOrCreate returns the session id or starts a new one under a fresh id.
// created reports whether a new session was started.
func (m *Manager) GetOrCreate(ctx context.Context, id string) (s *Session, created bool) {
	if s, ok := m.Get(ctx, id); ok {
		return s, false
	}
	return m.Create(), true
}

// Create starts a new session with an empty workspace.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.factory())
	m.mu.Lock()
	m.sessions[s.ID] = &entry{session: s, lastSeen: m.now()}
	m.mu.Unlock()
	m.logger.Debug("Session created", zap.String("session_id", s.ID))
	return s
}

// Save writes the workspace snapshot of s to the cache. It is a no-op
// without a cache.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if m.store == nil {
		return nil
	}
	data, err := json.Marshal(s.Workspace.Snapshot())
	if err != nil {
		return domain.NewInternalError("failed to marshal workspace snapshot", err)
	}
	if err := m.store.Set(ctx, cache.WorkspaceKey(s.ID), string(data), m.ttl); err != nil {
		m.logger.Error("Failed to save workspace snapshot", zap.String("session_id", s.ID), zap.Error(err))
		return domain.NewInternalError("failed to save workspace", err)
	}
	return nil
}

// Discard drops session id and its snapshot. Unknown ids are ignored.
func (m *Manager) Discard(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	if err := m.store.Delete(ctx, cache.WorkspaceKey(id)); err != nil {
		return domain.NewInternalError("failed to discard workspace", err)
	}
	return nil
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed. Their snapshots expire in the cache on their own.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Info("Evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (m *Manager) touch(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.now()
	return e.session, true
}

func (m *Manager) load(ctx context.Context, id string) *Session {
	key := cache.WorkspaceKey(id)
	data, err := m.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			m.logger.Warn("Failed to load workspace snapshot", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var snap paper.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		m.logger.Warn("Discarding unreadable workspace snapshot", zap.String("key", key), zap.Error(err))
		return nil
	}
	if err := m.store.Expire(ctx, key, m.ttl); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		m.logger.Warn("Failed to refresh workspace snapshot ttl", zap.String("key", key), zap.Error(err))
	}

	ws := m.factory()
	ws.Restore(snap)
	m.logger.Debug("Session restored", zap.String("session_id", id), zap.String("page", string(snap.Page)))
	return newSession(id, ws)
}
