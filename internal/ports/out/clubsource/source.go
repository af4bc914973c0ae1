package clubsource

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

// ClubRequest is the create/update payload for a club. Updates replace every field.
type ClubRequest struct {
	Name        string
	Description string
	President   string
	Email       string
	Category    string
}

// Source provides access to clubs. It is implemented by the remote (HTTP) source,
// the in-memory fallback store and the Postgres store used by the reference backend.
//
// Result ordering expectations:
// - List/SearchByName/ListByCategory return clubs ordered by ID ascending.
type Source interface {
	List(ctx context.Context, page, size int) (domain.Page[domain.Club], error)
	Get(ctx context.Context, id domain.ClubID) (domain.Club, error)

	// SearchByName is a case-insensitive substring match on Name.
	SearchByName(ctx context.Context, name string) ([]domain.Club, error)
	// ListByCategory is an exact match on Category.
	ListByCategory(ctx context.Context, category string) ([]domain.Club, error)

	Create(ctx context.Context, req ClubRequest) (domain.Club, error)
	Update(ctx context.Context, id domain.ClubID, req ClubRequest) (domain.Club, error)
	Delete(ctx context.Context, id domain.ClubID) error
}
