package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
)

// ClubSource implements clubsource.Source against /clubs.
type ClubSource struct {
	r gateway.Requester
}

func NewClubSource(r gateway.Requester) *ClubSource {
	return &ClubSource{r: r}
}

func (s *ClubSource) List(ctx context.Context, page, size int) (domain.Page[domain.Club], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	p, err := gateway.Get[oas.ClubPage](ctx, s.r, "/clubs?"+q.Encode())
	if err != nil {
		return domain.Page[domain.Club]{}, err
	}
	return p.ToDomain(), nil
}

func (s *ClubSource) Get(ctx context.Context, id domain.ClubID) (domain.Club, error) {
	c, err := gateway.Get[oas.Club](ctx, s.r, idPath("/clubs", int64(id)))
	if err != nil {
		return domain.Club{}, wrapNotFound(err, clubsource.ErrNotFound)
	}
	return c.ToDomain(), nil
}

func (s *ClubSource) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	q := url.Values{}
	q.Set("name", name)
	cs, err := gateway.Get[[]oas.Club](ctx, s.r, "/clubs/search?"+q.Encode())
	if err != nil {
		return nil, err
	}
	return oas.ClubsToDomain(cs), nil
}

func (s *ClubSource) ListByCategory(ctx context.Context, category string) ([]domain.Club, error) {
	q := url.Values{}
	q.Set("category", category)
	cs, err := gateway.Get[[]oas.Club](ctx, s.r, "/clubs/category?"+q.Encode())
	if err != nil {
		return nil, err
	}
	return oas.ClubsToDomain(cs), nil
}

func (s *ClubSource) Create(ctx context.Context, req clubsource.ClubRequest) (domain.Club, error) {
	c, err := gateway.Post[oas.Club](ctx, s.r, "/clubs", oas.ClubRequestFromPort(req))
	if err != nil {
		return domain.Club{}, err
	}
	return c.ToDomain(), nil
}

func (s *ClubSource) Update(ctx context.Context, id domain.ClubID, req clubsource.ClubRequest) (domain.Club, error) {
	c, err := gateway.Put[oas.Club](ctx, s.r, idPath("/clubs", int64(id)), oas.ClubRequestFromPort(req))
	if err != nil {
		return domain.Club{}, wrapNotFound(err, clubsource.ErrNotFound)
	}
	return c.ToDomain(), nil
}

func (s *ClubSource) Delete(ctx context.Context, id domain.ClubID) error {
	return wrapNotFound(gateway.Delete(ctx, s.r, idPath("/clubs", int64(id))), clubsource.ErrNotFound)
}
