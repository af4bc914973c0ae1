package committeesource

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

type CreateCommitteeRequest struct {
	Name        string
	Description string
	ClubID      domain.ClubID
	HeadID      domain.BoardMemberID
}

// UpdateCommitteeRequest is a partial update. A null HeadID clears the head.
type UpdateCommitteeRequest struct {
	Name        domain.Optional[string]
	Description domain.Optional[string]
	ClubID      domain.Optional[domain.ClubID]
	HeadID      domain.Optional[domain.BoardMemberID]
}

// Source provides access to committees, ordered by ID ascending.
type Source interface {
	List(ctx context.Context) ([]domain.Committee, error)
	Get(ctx context.Context, id domain.CommitteeID) (domain.Committee, error)
	Create(ctx context.Context, req CreateCommitteeRequest) (domain.Committee, error)
	Update(ctx context.Context, id domain.CommitteeID, req UpdateCommitteeRequest) (domain.Committee, error)
	Delete(ctx context.Context, id domain.CommitteeID) error
}
