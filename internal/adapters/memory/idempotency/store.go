package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
)

// Store is an in-memory implementation of idempotency.Store.
// Expired records are dropped lazily on Get. It is safe for concurrent use.
type Store struct {
	clk clock.Clock
	ttl time.Duration

	mu sync.Mutex
	m  map[idempotency.Fingerprint]idempotency.Record
}

// NewStore returns a store whose records expire after ttl (idempotency.DefaultTTL when <= 0).
func NewStore(clk clock.Clock, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = idempotency.DefaultTTL
	}
	return &Store{
		clk: clk,
		ttl: ttl,
		m:   make(map[idempotency.Fingerprint]idempotency.Record),
	}
}

func (s *Store) Get(ctx context.Context, fp idempotency.Fingerprint) (idempotency.Record, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.m[fp]
	if !ok {
		return idempotency.Record{}, false, nil
	}
	if s.clk.Now().Sub(rec.CreatedAt) > s.ttl {
		delete(s.m, fp)
		return idempotency.Record{}, false, nil
	}
	rec.Body = append([]byte(nil), rec.Body...)
	return rec, true, nil
}

func (s *Store) Put(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) error {
	_ = ctx
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.clk.Now()
	}
	rec.Body = append([]byte(nil), rec.Body...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[fp] = rec
	return nil
}
