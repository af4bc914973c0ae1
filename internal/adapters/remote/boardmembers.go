package remote

import (
	"context"
	"fmt"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// BoardMemberSource implements boardmembersource.Source against /board-members.
type BoardMemberSource struct {
	r gateway.Requester
}

func NewBoardMemberSource(r gateway.Requester) *BoardMemberSource {
	return &BoardMemberSource{r: r}
}

func (s *BoardMemberSource) List(ctx context.Context) ([]domain.BoardMember, error) {
	bs, err := gateway.Get[[]oas.BoardMember](ctx, s.r, "/board-members")
	if err != nil {
		return nil, err
	}
	out := make([]domain.BoardMember, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ToDomain())
	}
	return out, nil
}

func (s *BoardMemberSource) Get(ctx context.Context, id domain.BoardMemberID) (domain.BoardMember, error) {
	b, err := gateway.Get[oas.BoardMember](ctx, s.r, idPath("/board-members", int64(id)))
	if err != nil {
		return domain.BoardMember{}, wrapNotFound(err, boardmembersource.ErrNotFound)
	}
	return b.ToDomain(), nil
}

func (s *BoardMemberSource) Create(ctx context.Context, req boardmembersource.CreateBoardMemberRequest) (domain.BoardMember, error) {
	body, err := oas.CreateBoardMemberRequestFromPort(req)
	if err != nil {
		return domain.BoardMember{}, fmt.Errorf("%w: %w", source.ErrValidation, err)
	}
	b, err := gateway.Post[oas.BoardMember](ctx, s.r, "/board-members", body)
	if err != nil {
		return domain.BoardMember{}, err
	}
	return b.ToDomain(), nil
}

func (s *BoardMemberSource) Update(ctx context.Context, id domain.BoardMemberID, req boardmembersource.UpdateBoardMemberRequest) (domain.BoardMember, error) {
	body, err := oas.UpdateBoardMemberRequestFromPort(req)
	if err != nil {
		return domain.BoardMember{}, fmt.Errorf("%w: %w", source.ErrValidation, err)
	}
	b, err := gateway.Put[oas.BoardMember](ctx, s.r, idPath("/board-members", int64(id)), body)
	if err != nil {
		return domain.BoardMember{}, wrapNotFound(err, boardmembersource.ErrNotFound)
	}
	return b.ToDomain(), nil
}

func (s *BoardMemberSource) Delete(ctx context.Context, id domain.BoardMemberID) error {
	return wrapNotFound(gateway.Delete(ctx, s.r, idPath("/board-members", int64(id))), boardmembersource.ErrNotFound)
}
