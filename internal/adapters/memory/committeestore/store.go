package committeestore

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

// Store is an in-memory implementation of committeesource.Source.
// It is safe for concurrent use.
type Store struct {
	items *fallback.Store[domain.Committee]
}

func NewStore() *Store {
	return NewStoreFrom(Seed())
}

func NewStoreFrom(seed []domain.Committee) *Store {
	seed = append([]domain.Committee(nil), seed...)
	return &Store{
		items: fallback.New(
			func() []domain.Committee { return seed },
			func(c domain.Committee) int64 { return int64(c.ID) },
			nil,
		),
	}
}

func (s *Store) Reset() { s.items.Reset() }

func (s *Store) List(ctx context.Context) ([]domain.Committee, error) {
	_ = ctx
	return s.items.All(), nil
}

func (s *Store) Get(ctx context.Context, id domain.CommitteeID) (domain.Committee, error) {
	_ = ctx
	c, ok := s.items.Get(int64(id))
	if !ok {
		return domain.Committee{}, committeesource.ErrNotFound
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, req committeesource.CreateCommitteeRequest) (domain.Committee, error) {
	_ = ctx
	return s.items.Create(func(id int64) domain.Committee {
		return domain.Committee{
			ID:          domain.CommitteeID(id),
			Name:        req.Name,
			Description: req.Description,
			ClubID:      req.ClubID,
			HeadID:      req.HeadID,
		}
	}), nil
}

func (s *Store) Update(ctx context.Context, id domain.CommitteeID, req committeesource.UpdateCommitteeRequest) (domain.Committee, error) {
	_ = ctx
	c, ok := s.items.Update(int64(id), func(c domain.Committee) domain.Committee {
		req.ApplyTo(&c)
		return c
	})
	if !ok {
		return domain.Committee{}, committeesource.ErrNotFound
	}
	return c, nil
}

func (s *Store) Delete(ctx context.Context, id domain.CommitteeID) error {
	_ = ctx
	if !s.items.Delete(int64(id)) {
		return committeesource.ErrNotFound
	}
	return nil
}
