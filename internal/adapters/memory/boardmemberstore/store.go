package boardmemberstore

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
)

// Store is an in-memory implementation of boardmembersource.Source.
// It is safe for concurrent use.
type Store struct {
	items *fallback.Store[domain.BoardMember]
}

func NewStore() *Store {
	return NewStoreFrom(Seed())
}

func NewStoreFrom(seed []domain.BoardMember) *Store {
	seed = append([]domain.BoardMember(nil), seed...)
	return &Store{
		items: fallback.New(
			func() []domain.BoardMember { return seed },
			func(b domain.BoardMember) int64 { return int64(b.ID) },
			nil,
		),
	}
}

func (s *Store) Reset() { s.items.Reset() }

func (s *Store) List(ctx context.Context) ([]domain.BoardMember, error) {
	_ = ctx
	return s.items.All(), nil
}

func (s *Store) Get(ctx context.Context, id domain.BoardMemberID) (domain.BoardMember, error) {
	_ = ctx
	b, ok := s.items.Get(int64(id))
	if !ok {
		return domain.BoardMember{}, boardmembersource.ErrNotFound
	}
	return b, nil
}

func (s *Store) Create(ctx context.Context, req boardmembersource.CreateBoardMemberRequest) (domain.BoardMember, error) {
	_ = ctx
	return s.items.Create(func(id int64) domain.BoardMember {
		return domain.BoardMember{
			ID:        domain.BoardMemberID(id),
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Position:  req.Position,
			JoinDate:  req.JoinDate,
			Season:    req.Season,
			ClubID:    req.ClubID,
			IsActive:  true,
		}
	}), nil
}

func (s *Store) Update(ctx context.Context, id domain.BoardMemberID, req boardmembersource.UpdateBoardMemberRequest) (domain.BoardMember, error) {
	_ = ctx
	b, ok := s.items.Update(int64(id), func(b domain.BoardMember) domain.BoardMember {
		req.ApplyTo(&b)
		return b
	})
	if !ok {
		return domain.BoardMember{}, boardmembersource.ErrNotFound
	}
	return b, nil
}

func (s *Store) Delete(ctx context.Context, id domain.BoardMemberID) error {
	_ = ctx
	if !s.items.Delete(int64(id)) {
		return boardmembersource.ErrNotFound
	}
	return nil
}
