package boardmembersource

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

type CreateBoardMemberRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Position  string
	JoinDate  string // domain.DateLayout
	Season    string
	ClubID    domain.ClubID
}

// UpdateBoardMemberRequest is a partial update; unspecified fields are left unchanged.
type UpdateBoardMemberRequest struct {
	Email     domain.Optional[string]
	Password  domain.Optional[string]
	FirstName domain.Optional[string]
	LastName  domain.Optional[string]
	Position  domain.Optional[string]
	JoinDate  domain.Optional[string]
	Season    domain.Optional[string]
	ClubID    domain.Optional[domain.ClubID]
	IsActive  domain.Optional[bool]
}

// Source provides access to board members, ordered by ID ascending.
type Source interface {
	List(ctx context.Context) ([]domain.BoardMember, error)
	Get(ctx context.Context, id domain.BoardMemberID) (domain.BoardMember, error)
	Create(ctx context.Context, req CreateBoardMemberRequest) (domain.BoardMember, error)
	Update(ctx context.Context, id domain.BoardMemberID, req UpdateBoardMemberRequest) (domain.BoardMember, error)
	Delete(ctx context.Context, id domain.BoardMemberID) error
}
