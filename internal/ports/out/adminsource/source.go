package adminsource

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

type CreateAdminRequest struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Department  *string
	AdminLevel  *string
	Permissions []string
}

// UpdateAdminRequest is a partial update; unspecified fields are left unchanged.
type UpdateAdminRequest struct {
	Email          domain.Optional[string] // cannot be null
	Password       domain.Optional[string] // cannot be null
	FirstName      domain.Optional[string] // cannot be null
	LastName       domain.Optional[string] // cannot be null
	Phone          domain.Optional[string]
	ProfilePicture domain.Optional[string]
	Department     domain.Optional[string]
	AdminLevel     domain.Optional[string]
	Active         domain.Optional[bool]
	Permissions    domain.Optional[[]string]
}

// Source provides access to admin accounts, ordered by ID ascending.
type Source interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Get(ctx context.Context, id domain.AdminID) (domain.Admin, error)
	Create(ctx context.Context, req CreateAdminRequest) (domain.Admin, error)
	Update(ctx context.Context, id domain.AdminID, req UpdateAdminRequest) (domain.Admin, error)
	Delete(ctx context.Context, id domain.AdminID) error
}
