// Package fallback implements the generic in-memory record store behind every
// entity's fallback data source.
//
// A Store is seeded on first use from a literal seed function, keeps records in
// insertion order and assigns ids as one greater than the highest id it has ever
// held, so an id is never handed out twice even after its record is deleted.
package fallback

import (
	"sync"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

// Store is safe for concurrent use. Records are cloned on the way in and out.
type Store[T any] struct {
	seed  func() []T
	idOf  func(T) int64
	clone func(T) T

	once sync.Once
	mu   sync.RWMutex

	items   []T
	highest int64
}

// New returns a store that will be populated from seed on first access.
// clone may be nil for records without reference fields.
func New[T any](seed func() []T, idOf func(T) int64, clone func(T) T) *Store[T] {
	if seed == nil {
		seed = func() []T { return nil }
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Store[T]{seed: seed, idOf: idOf, clone: clone}
}

func (s *Store[T]) init() {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loadLocked()
	})
}

func (s *Store[T]) loadLocked() {
	seeded := s.seed()
	s.items = make([]T, 0, len(seeded))
	s.highest = 0
	for _, v := range seeded {
		s.items = append(s.items, s.clone(v))
		if id := s.idOf(v); id > s.highest {
			s.highest = id
		}
	}
}

// Reset discards every record and re-applies the seed.
func (s *Store[T]) Reset() {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
}

func (s *Store[T]) Len() int {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns every record in insertion order.
func (s *Store[T]) All() []T {
	return s.Filter(nil)
}

// List returns one page of records plus the envelope counts. It never fails.
func (s *Store[T]) List(page, size int) domain.Page[T] {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := domain.Paginate(s.items, page, size)
	for i := range p.Content {
		p.Content[i] = s.clone(p.Content[i])
	}
	return p
}

// Get returns the first record with the given id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.clone(s.items[i]), true
	}
	var zero T
	return zero, false
}

// Filter returns all records matching pred (all records when pred is nil), possibly none.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0)
	for _, v := range s.items {
		if pred == nil || pred(v) {
			out = append(out, s.clone(v))
		}
	}
	return out
}

// Create appends the record built for the next id and returns it. It never fails.
func (s *Store[T]) Create(build func(id int64) T) T {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextIDLocked()
	v := s.clone(build(id))
	s.items = append(s.items, v)
	if id > s.highest {
		s.highest = id
	}
	return s.clone(v)
}

// Update replaces the first record with the given id by mutate's result.
func (s *Store[T]) Update(id int64, mutate func(T) T) (T, bool) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	s.items[i] = s.clone(mutate(s.clone(s.items[i])))
	return s.clone(s.items[i]), true
}

// Delete removes the first record with the given id. It reports false when none matched.
func (s *Store[T]) Delete(id int64) bool {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

func (s *Store[T]) indexLocked(id int64) int {
	for i, v := range s.items {
		if s.idOf(v) == id {
			return i
		}
	}
	return -1
}

// nextIDLocked is max(current ids ∪ {0}) + 1, raised past any id already handed out.
func (s *Store[T]) nextIDLocked() int64 {
	var top int64
	for _, v := range s.items {
		if id := s.idOf(v); id > top {
			top = id
		}
	}
	if s.highest > top {
		top = s.highest
	}
	return top + 1
}
