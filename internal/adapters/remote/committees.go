package remote

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

// CommitteeSource implements committeesource.Source against /committees.
type CommitteeSource struct {
	r gateway.Requester
}

func NewCommitteeSource(r gateway.Requester) *CommitteeSource {
	return &CommitteeSource{r: r}
}

func (s *CommitteeSource) List(ctx context.Context) ([]domain.Committee, error) {
	cs, err := gateway.Get[[]oas.Committee](ctx, s.r, "/committees")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Committee, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ToDomain())
	}
	return out, nil
}

func (s *CommitteeSource) Get(ctx context.Context, id domain.CommitteeID) (domain.Committee, error) {
	c, err := gateway.Get[oas.Committee](ctx, s.r, idPath("/committees", int64(id)))
	if err != nil {
		return domain.Committee{}, wrapNotFound(err, committeesource.ErrNotFound)
	}
	return c.ToDomain(), nil
}

func (s *CommitteeSource) Create(ctx context.Context, req committeesource.CreateCommitteeRequest) (domain.Committee, error) {
	c, err := gateway.Post[oas.Committee](ctx, s.r, "/committees", oas.CreateCommitteeRequestFromPort(req))
	if err != nil {
		return domain.Committee{}, err
	}
	return c.ToDomain(), nil
}

func (s *CommitteeSource) Update(ctx context.Context, id domain.CommitteeID, req committeesource.UpdateCommitteeRequest) (domain.Committee, error) {
	c, err := gateway.Put[oas.Committee](ctx, s.r, idPath("/committees", int64(id)), oas.UpdateCommitteeRequestFromPort(req))
	if err != nil {
		return domain.Committee{}, wrapNotFound(err, committeesource.ErrNotFound)
	}
	return c.ToDomain(), nil
}

func (s *CommitteeSource) Delete(ctx context.Context, id domain.CommitteeID) error {
	return wrapNotFound(gateway.Delete(ctx, s.r, idPath("/committees", int64(id))), committeesource.ErrNotFound)
}
