package remote

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
)

// AdminSource implements adminsource.Source against /admins.
type AdminSource struct {
	r gateway.Requester
}

func NewAdminSource(r gateway.Requester) *AdminSource {
	return &AdminSource{r: r}
}

func (s *AdminSource) List(ctx context.Context) ([]domain.Admin, error) {
	as, err := gateway.Get[[]oas.Admin](ctx, s.r, "/admins")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Admin, 0, len(as))
	for _, a := range as {
		out = append(out, a.ToDomain())
	}
	return out, nil
}

func (s *AdminSource) Get(ctx context.Context, id domain.AdminID) (domain.Admin, error) {
	a, err := gateway.Get[oas.Admin](ctx, s.r, idPath("/admins", int64(id)))
	if err != nil {
		return domain.Admin{}, wrapNotFound(err, adminsource.ErrNotFound)
	}
	return a.ToDomain(), nil
}

func (s *AdminSource) Create(ctx context.Context, req adminsource.CreateAdminRequest) (domain.Admin, error) {
	a, err := gateway.Post[oas.Admin](ctx, s.r, "/admins", oas.CreateAdminRequestFromPort(req))
	if err != nil {
		return domain.Admin{}, err
	}
	return a.ToDomain(), nil
}

func (s *AdminSource) Update(ctx context.Context, id domain.AdminID, req adminsource.UpdateAdminRequest) (domain.Admin, error) {
	a, err := gateway.Put[oas.Admin](ctx, s.r, idPath("/admins", int64(id)), oas.UpdateAdminRequestFromPort(req))
	if err != nil {
		return domain.Admin{}, wrapNotFound(err, adminsource.ErrNotFound)
	}
	return a.ToDomain(), nil
}

func (s *AdminSource) Delete(ctx context.Context, id domain.AdminID) error {
	return wrapNotFound(gateway.Delete(ctx, s.r, idPath("/admins", int64(id))), adminsource.ErrNotFound)
}
