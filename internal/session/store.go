package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jonathan/interview-coach/internal/metrics"
	"github.com/jonathan/interview-coach/internal/types"
)

// Store persists sessions.
type Store interface {
	Create(ctx context.Context, meta Metadata) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	// WithLock runs fn on the live session while holding its lock. Changes made
	// by fn are kept even when fn returns an error.
	WithLock(ctx context.Context, id string, fn func(*Session) error) error
	AppendQuestion(ctx context.Context, id, question string) error
	AppendAnswer(ctx context.Context, id, answer string) (string, error)
	AppendEvaluation(ctx context.Context, id string, rec types.EvaluationRecord) error
	Delete(ctx context.Context, id string) error
	Count() int
}

// Default lifetimes for MemoryStore.
const (
	DefaultTTL             = 2 * time.Hour
	DefaultCleanupInterval = 10 * time.Minute
)

// MemoryStore keeps sessions in process memory. Each access refreshes the
// session's expiry, so TTL measures idle time.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates a store. A ttl of 0 disables expiry.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	c := cache.New(expiration, cleanupInterval)
	c.OnEvicted(func(string, interface{}) {
		metrics.SessionsActive.Dec()
	})
	return &MemoryStore{cache: c, ttl: expiration, now: time.Now}
}

// Create starts a session with a fresh id. A zero StartedAt is set to now.
func (m *MemoryStore) Create(_ context.Context, meta Metadata) (*Session, error) {
	if meta.StartedAt.IsZero() {
		meta.StartedAt = m.now().UTC()
	}
	s := newSession(uuid.NewString(), meta)
	m.cache.Set(s.ID, s, m.ttl)
	metrics.SessionsActive.Inc()
	return s.snapshot(), nil
}

// Get returns a snapshot of the session.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s, err := m.live(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// WithLock implements Store.
func (m *MemoryStore) WithLock(ctx context.Context, id string, fn func(*Session) error) error {
	s, err := m.live(id)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer m.touch(s)
	return fn(s)
}

// AppendQuestion implements Store.
func (m *MemoryStore) AppendQuestion(ctx context.Context, id, question string) error {
	return m.WithLock(ctx, id, func(s *Session) error {
		return s.AppendQuestion(question)
	})
}

// AppendAnswer implements Store. It returns the question being answered.
func (m *MemoryStore) AppendAnswer(ctx context.Context, id, answer string) (string, error) {
	var question string
	err := m.WithLock(ctx, id, func(s *Session) error {
		var err error
		question, err = s.AppendAnswer(answer)
		return err
	})
	return question, err
}

// AppendEvaluation implements Store.
func (m *MemoryStore) AppendEvaluation(ctx context.Context, id string, rec types.EvaluationRecord) error {
	return m.WithLock(ctx, id, func(s *Session) error {
		return s.AppendEvaluation(rec)
	})
}

// Delete removes a session.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	if _, err := m.live(id); err != nil {
		return err
	}
	m.cache.Delete(id)
	return nil
}

// Count returns the number of sessions held, including expired ones not yet
// cleaned up.
func (m *MemoryStore) Count() int {
	return m.cache.ItemCount()
}

func (m *MemoryStore) live(id string) (*Session, error) {
	v, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*Session), nil
}

// touch refreshes the expiry unless the session was deleted meanwhile. Replace
// fails on a missing key, so a deleted session is never re-inserted.
func (m *MemoryStore) touch(s *Session) {
	_ = m.cache.Replace(s.ID, s, m.ttl)
}
