package clubstore

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
)

// Store is an in-memory implementation of clubsource.Source.
// It is safe for concurrent use.
type Store struct {
	clk   clock.Clock
	items *fallback.Store[domain.Club]
}

// NewStore returns a store seeded with Seed on first use.
func NewStore(clk clock.Clock) *Store {
	return NewStoreFrom(clk, Seed())
}

// NewStoreFrom returns a store seeded with a copy of seed (nil for an empty store).
func NewStoreFrom(clk clock.Clock, seed []domain.Club) *Store {
	seed = append([]domain.Club(nil), seed...)
	return &Store{
		clk: clk,
		items: fallback.New(
			func() []domain.Club { return seed },
			func(c domain.Club) int64 { return int64(c.ID) },
			nil,
		),
	}
}

// Reset restores the seed data.
func (s *Store) Reset() { s.items.Reset() }

func (s *Store) List(ctx context.Context, page, size int) (domain.Page[domain.Club], error) {
	_ = ctx
	return s.items.List(page, size), nil
}

func (s *Store) Get(ctx context.Context, id domain.ClubID) (domain.Club, error) {
	_ = ctx
	c, ok := s.items.Get(int64(id))
	if !ok {
		return domain.Club{}, clubsource.ErrNotFound
	}
	return c, nil
}

func (s *Store) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	_ = ctx
	return s.items.Filter(func(c domain.Club) bool {
		return domain.ContainsFold(c.Name, name)
	}), nil
}

func (s *Store) ListByCategory(ctx context.Context, category string) ([]domain.Club, error) {
	_ = ctx
	return s.items.Filter(func(c domain.Club) bool {
		return c.Category == category
	}), nil
}

func (s *Store) Create(ctx context.Context, req clubsource.ClubRequest) (domain.Club, error) {
	_ = ctx
	now := domain.FormatTimestamp(s.clk.Now())
	return s.items.Create(func(id int64) domain.Club {
		c := fromRequest(req)
		c.ID = domain.ClubID(id)
		c.CreatedAt = now
		c.UpdatedAt = now
		return c
	}), nil
}

func (s *Store) Update(ctx context.Context, id domain.ClubID, req clubsource.ClubRequest) (domain.Club, error) {
	_ = ctx
	now := domain.FormatTimestamp(s.clk.Now())
	c, ok := s.items.Update(int64(id), func(existing domain.Club) domain.Club {
		c := fromRequest(req)
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		c.UpdatedAt = now
		return c
	})
	if !ok {
		return domain.Club{}, clubsource.ErrNotFound
	}
	return c, nil
}

func (s *Store) Delete(ctx context.Context, id domain.ClubID) error {
	_ = ctx
	if !s.items.Delete(int64(id)) {
		return clubsource.ErrNotFound
	}
	return nil
}

func fromRequest(req clubsource.ClubRequest) domain.Club {
	return domain.Club{
		Name:        req.Name,
		Description: req.Description,
		President:   req.President,
		Email:       req.Email,
		Category:    req.Category,
	}
}
