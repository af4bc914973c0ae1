package boardmembers_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/boardmemberstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/boardmembers"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
)

var errDown = fmt.Errorf("connection refused: %w", fallback.ErrUnavailable)

type downSource struct{}

func (downSource) List(context.Context) ([]domain.BoardMember, error) { return nil, errDown }
func (downSource) Get(context.Context, domain.BoardMemberID) (domain.BoardMember, error) {
	return domain.BoardMember{}, errDown
}
func (downSource) Create(context.Context, boardmembersource.CreateBoardMemberRequest) (domain.BoardMember, error) {
	return domain.BoardMember{}, errDown
}
func (downSource) Update(context.Context, domain.BoardMemberID, boardmembersource.UpdateBoardMemberRequest) (domain.BoardMember, error) {
	return domain.BoardMember{}, errDown
}
func (downSource) Delete(context.Context, domain.BoardMemberID) error { return errDown }

func validCreate() boardmembersource.CreateBoardMemberRequest {
	return boardmembersource.CreateBoardMemberRequest{
		Email:     "hana@nu.edu.eg",
		Password:  "board-pass",
		FirstName: "Hana",
		LastName:  "Mostafa",
		Position:  "President",
		JoinDate:  "2024-09-01",
		Season:    "2024",
		ClubID:    1,
	}
}

func TestService_OfflineReadsAndWrites(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(0, 0).UTC())
	svc := boardmembers.NewService(downSource{}, boardmemberstore.NewStore(), zap.NewNop(), clk, fallback.Options{})
	ctx := context.Background()

	list, err := svc.List(ctx)
	if err != nil || len(list) != 3 {
		t.Fatalf("List()=%v err=%v", list, err)
	}
	if _, err := svc.Get(ctx, 99); !errors.Is(err, fallback.ErrNotFound) {
		t.Fatalf("Get(99) err=%v, want ErrNotFound", err)
	}
	if _, err := svc.Create(ctx, validCreate()); !errors.Is(err, fallback.ErrUnavailable) {
		t.Fatalf("Create() err=%v, want ErrUnavailable", err)
	}
	if st := svc.Status(); st.FallbackReads != 2 || st.FallbackWrites != 0 {
		t.Fatalf("Status()=%+v", st)
	}
}

func TestNormalizeCreateBoardMember_Rejects(t *testing.T) {
	t.Parallel()

	req := validCreate()
	req.JoinDate = "01/09/2024"
	req.ClubID = 0
	req.Password = ""
	_, err := boardmembers.NormalizeCreateBoardMember(req)
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("err=%v, want *apperr.Error", err)
	}
	for _, f := range []string{"joinDate", "clubId", "password"} {
		if _, ok := ae.Details[f]; !ok {
			t.Fatalf("details=%v, missing %s", ae.Details, f)
		}
	}
}

func TestNormalizeUpdateBoardMember(t *testing.T) {
	t.Parallel()

	req, err := boardmembers.NormalizeUpdateBoardMember(boardmembersource.UpdateBoardMemberRequest{
		Email:    domain.Some(" Hana@NU.edu.eg"),
		Position: domain.Some(" Vice  President "),
	})
	if err != nil {
		t.Fatalf("NormalizeUpdateBoardMember() err=%v", err)
	}
	if req.Email.Value() != "hana@nu.edu.eg" || req.Position.Value() != "Vice President" || req.Password.IsSpecified() {
		t.Fatalf("NormalizeUpdateBoardMember()=%+v", req)
	}

	_, err = boardmembers.NormalizeUpdateBoardMember(boardmembersource.UpdateBoardMemberRequest{Season: domain.Null[string]()})
	if !errors.Is(err, fallback.ErrValidation) {
		t.Fatalf("null season err=%v, want ErrValidation", err)
	}
}
