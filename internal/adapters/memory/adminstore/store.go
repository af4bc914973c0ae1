package adminstore

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
)

// Store is an in-memory implementation of adminsource.Source.
// It is safe for concurrent use.
type Store struct {
	clk   clock.Clock
	items *fallback.Store[domain.Admin]
}

func NewStore(clk clock.Clock) *Store {
	return NewStoreFrom(clk, Seed())
}

func NewStoreFrom(clk clock.Clock, seed []domain.Admin) *Store {
	seed = append([]domain.Admin(nil), seed...)
	return &Store{
		clk: clk,
		items: fallback.New(
			func() []domain.Admin { return seed },
			func(a domain.Admin) int64 { return int64(a.ID) },
			cloneAdmin,
		),
	}
}

func (s *Store) Reset() { s.items.Reset() }

func (s *Store) List(ctx context.Context) ([]domain.Admin, error) {
	_ = ctx
	return s.items.All(), nil
}

func (s *Store) Get(ctx context.Context, id domain.AdminID) (domain.Admin, error) {
	_ = ctx
	a, ok := s.items.Get(int64(id))
	if !ok {
		return domain.Admin{}, adminsource.ErrNotFound
	}
	return a, nil
}

func (s *Store) Create(ctx context.Context, req adminsource.CreateAdminRequest) (domain.Admin, error) {
	_ = ctx
	now := s.clk.Now().UnixMilli()
	return s.items.Create(func(id int64) domain.Admin {
		a := domain.Admin{
			ID:         domain.AdminID(id),
			Email:      req.Email,
			Password:   req.Password,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Department: cloneStringPtr(req.Department),
			AdminLevel: cloneStringPtr(req.AdminLevel),
			Active:     true,
			Roles:      []string{domain.RoleAdmin},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		a.ApplyPermissions(req.Permissions)
		return a
	}), nil
}

func (s *Store) Update(ctx context.Context, id domain.AdminID, req adminsource.UpdateAdminRequest) (domain.Admin, error) {
	_ = ctx
	now := s.clk.Now().UnixMilli()
	a, ok := s.items.Update(int64(id), func(a domain.Admin) domain.Admin {
		req.ApplyTo(&a)
		a.UpdatedAt = now
		return a
	})
	if !ok {
		return domain.Admin{}, adminsource.ErrNotFound
	}
	return a, nil
}

func (s *Store) Delete(ctx context.Context, id domain.AdminID) error {
	_ = ctx
	if !s.items.Delete(int64(id)) {
		return adminsource.ErrNotFound
	}
	return nil
}

func cloneAdmin(a domain.Admin) domain.Admin {
	out := a
	out.Phone = cloneStringPtr(a.Phone)
	out.ProfilePicture = cloneStringPtr(a.ProfilePicture)
	out.Department = cloneStringPtr(a.Department)
	out.AdminLevel = cloneStringPtr(a.AdminLevel)
	if a.Roles != nil {
		out.Roles = append([]string(nil), a.Roles...)
	}
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
