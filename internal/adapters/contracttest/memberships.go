package contracttest

import (
	"context"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

func RunMembershipSource(t *testing.T, newSource MembershipSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src := open(t, newSource)

	ms, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List empty: %v", err)
	}
	if len(ms) != 0 {
		t.Fatalf("expected empty list, got %#v", ms)
	}

	// No referential integrity: the club and user need not exist.
	a, err := src.Create(ctx, membershipsource.MembershipRequest{UserID: 7, ClubID: 404})
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if a.ID <= 0 || a.UserID != 7 || a.ClubID != 404 || a.JoinedAt == "" {
		t.Fatalf("unexpected membership: %+v", a)
	}
	b, err := src.Create(ctx, membershipsource.MembershipRequest{UserID: 8, ClubID: 2})
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}
	if b.ID <= a.ID {
		t.Fatalf("expected ascending ids, got %d after %d", b.ID, a.ID)
	}

	ms, err = src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ms) != 2 || ms[0].ID != a.ID || ms[1].ID != b.ID {
		t.Fatalf("unexpected list: %#v", ms)
	}

	got, err := src.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 8 || got.ClubID != 2 {
		t.Fatalf("unexpected membership: %+v", got)
	}

	if err := src.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	requireNotFound(t, "Delete twice", src.Delete(ctx, a.ID), membershipsource.ErrNotFound)
	_, err = src.Get(ctx, a.ID)
	requireNotFound(t, "Get deleted", err, membershipsource.ErrNotFound)
}
