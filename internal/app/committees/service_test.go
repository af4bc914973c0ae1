package committees_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/committeestore"
	"github.com/nu-student-clubs/clubs-admin/internal/app/committees"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

var errDown = fmt.Errorf("connection refused: %w", fallback.ErrUnavailable)

type downSource struct{}

func (downSource) List(context.Context) ([]domain.Committee, error) { return nil, errDown }
func (downSource) Get(context.Context, domain.CommitteeID) (domain.Committee, error) {
	return domain.Committee{}, errDown
}
func (downSource) Create(context.Context, committeesource.CreateCommitteeRequest) (domain.Committee, error) {
	return domain.Committee{}, errDown
}
func (downSource) Update(context.Context, domain.CommitteeID, committeesource.UpdateCommitteeRequest) (domain.Committee, error) {
	return domain.Committee{}, errDown
}
func (downSource) Delete(context.Context, domain.CommitteeID) error { return errDown }

func TestService_OfflineReadsAndWrites(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(0, 0).UTC())
	svc := committees.NewService(downSource{}, committeestore.NewStore(), zap.NewNop(), clk, fallback.Options{})
	ctx := context.Background()

	c, err := svc.Get(ctx, 2)
	if err != nil || c.Name != "Events" {
		t.Fatalf("Get(2)=%+v err=%v", c, err)
	}
	_, err = svc.Update(ctx, 2, committeesource.UpdateCommitteeRequest{Name: domain.Some("Events & Trips")})
	if !errors.Is(err, fallback.ErrUnavailable) {
		t.Fatalf("Update() err=%v, want ErrUnavailable", err)
	}
	c, _ = svc.Get(ctx, 2)
	if c.Name != "Events" {
		t.Fatalf("local store changed by propagating update: %+v", c)
	}
}

func TestNormalizeCommittee(t *testing.T) {
	t.Parallel()

	req, err := committees.NormalizeCreateCommittee(committeesource.CreateCommitteeRequest{Name: "  Media ", ClubID: 2})
	if err != nil || req.Name != "Media" || req.HeadID != 0 {
		t.Fatalf("NormalizeCreateCommittee()=%+v err=%v", req, err)
	}
	if _, err := committees.NormalizeCreateCommittee(committeesource.CreateCommitteeRequest{Name: "Media"}); !errors.Is(err, fallback.ErrValidation) {
		t.Fatalf("missing clubId err=%v, want ErrValidation", err)
	}

	upd, err := committees.NormalizeUpdateCommittee(committeesource.UpdateCommitteeRequest{HeadID: domain.Null[domain.BoardMemberID]()})
	if err != nil || !upd.HeadID.IsNull() {
		t.Fatalf("NormalizeUpdateCommittee(null head)=%+v err=%v", upd, err)
	}
	if _, err := committees.NormalizeUpdateCommittee(committeesource.UpdateCommitteeRequest{Name: domain.Null[string]()}); !errors.Is(err, fallback.ErrValidation) {
		t.Fatalf("null name err=%v, want ErrValidation", err)
	}
}
