package membershipstore

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

// Store is an in-memory implementation of membershipsource.Source.
// It is safe for concurrent use.
type Store struct {
	clk   clock.Clock
	items *fallback.Store[domain.Membership]
}

func NewStore(clk clock.Clock) *Store {
	return NewStoreFrom(clk, Seed())
}

func NewStoreFrom(clk clock.Clock, seed []domain.Membership) *Store {
	seed = append([]domain.Membership(nil), seed...)
	return &Store{
		clk: clk,
		items: fallback.New(
			func() []domain.Membership { return seed },
			func(m domain.Membership) int64 { return int64(m.ID) },
			nil,
		),
	}
}

func (s *Store) Reset() { s.items.Reset() }

func (s *Store) List(ctx context.Context) ([]domain.Membership, error) {
	_ = ctx
	return s.items.All(), nil
}

func (s *Store) Get(ctx context.Context, id domain.MembershipID) (domain.Membership, error) {
	_ = ctx
	m, ok := s.items.Get(int64(id))
	if !ok {
		return domain.Membership{}, membershipsource.ErrNotFound
	}
	return m, nil
}

// Create records the application with JoinedAt set to the current time.
func (s *Store) Create(ctx context.Context, req membershipsource.MembershipRequest) (domain.Membership, error) {
	_ = ctx
	joinedAt := domain.FormatTimestamp(s.clk.Now())
	return s.items.Create(func(id int64) domain.Membership {
		return domain.Membership{
			ID:       domain.MembershipID(id),
			UserID:   req.UserID,
			ClubID:   req.ClubID,
			JoinedAt: joinedAt,
		}
	}), nil
}

func (s *Store) Delete(ctx context.Context, id domain.MembershipID) error {
	_ = ctx
	if !s.items.Delete(int64(id)) {
		return membershipsource.ErrNotFound
	}
	return nil
}
