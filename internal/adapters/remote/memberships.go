package remote

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

// MembershipSource implements membershipsource.Source against /applications.
type MembershipSource struct {
	r gateway.Requester
}

func NewMembershipSource(r gateway.Requester) *MembershipSource {
	return &MembershipSource{r: r}
}

func (s *MembershipSource) List(ctx context.Context) ([]domain.Membership, error) {
	ms, err := gateway.Get[[]oas.Membership](ctx, s.r, "/applications")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Membership, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ToDomain())
	}
	return out, nil
}

func (s *MembershipSource) Get(ctx context.Context, id domain.MembershipID) (domain.Membership, error) {
	m, err := gateway.Get[oas.Membership](ctx, s.r, idPath("/applications", int64(id)))
	if err != nil {
		return domain.Membership{}, wrapNotFound(err, membershipsource.ErrNotFound)
	}
	return m.ToDomain(), nil
}

func (s *MembershipSource) Create(ctx context.Context, req membershipsource.MembershipRequest) (domain.Membership, error) {
	m, err := gateway.Post[oas.Membership](ctx, s.r, "/applications", oas.MembershipRequestFromPort(req))
	if err != nil {
		return domain.Membership{}, err
	}
	return m.ToDomain(), nil
}

func (s *MembershipSource) Delete(ctx context.Context, id domain.MembershipID) error {
	return wrapNotFound(gateway.Delete(ctx, s.r, idPath("/applications", int64(id))), membershipsource.ErrNotFound)
}
