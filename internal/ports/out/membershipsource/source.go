package membershipsource

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

// MembershipRequest is the payload of a club application.
type MembershipRequest struct {
	UserID domain.UserID
	ClubID domain.ClubID
}

// Source provides access to memberships (club applications), ordered by ID ascending.
type Source interface {
	List(ctx context.Context) ([]domain.Membership, error)
	Get(ctx context.Context, id domain.MembershipID) (domain.Membership, error)
	Create(ctx context.Context, req MembershipRequest) (domain.Membership, error)
	Delete(ctx context.Context, id domain.MembershipID) error
}
