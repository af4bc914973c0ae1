package membershipstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/contracttest"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

func TestContract_MembershipSource(t *testing.T) {
	contracttest.RunMembershipSource(t, func(t *testing.T) (membershipsource.Source, func()) {
		t.Helper()
		return NewStoreFrom(clock.NewManualClock(time.Unix(0, 0).UTC()), nil), nil
	})
}

func TestStore_DeleteTwice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewStore(clock.NewManualClock(time.Unix(0, 0).UTC()))
	if err := s.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete(2) err=%v", err)
	}
	if err := s.Delete(ctx, 2); !errors.Is(err, membershipsource.ErrNotFound) {
		t.Fatalf("Delete(2) again err=%v, want ErrNotFound", err)
	}
	ms, _ := s.List(ctx)
	if len(ms) != 2 {
		t.Fatalf("List() len=%d, want 2", len(ms))
	}
}

func TestStore_CreateAfterDeleteDoesNotReuseID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewStore(clock.NewManualClock(time.Unix(0, 0).UTC()))
	if err := s.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete(3) err=%v", err)
	}
	m, err := s.Create(ctx, membershipsource.MembershipRequest{UserID: 1, ClubID: 2})
	if err != nil {
		t.Fatalf("Create() err=%v", err)
	}
	if m.ID != 4 {
		t.Fatalf("Create() id=%d, want 4", m.ID)
	}
}
