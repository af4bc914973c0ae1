package contracttest

import (
	"context"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

func RunCommitteeSource(t *testing.T, newSource CommitteeSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src := open(t, newSource)

	web, err := src.Create(ctx, committeesource.CreateCommitteeRequest{
		Name:        "Web Development",
		Description: "Maintains the club site",
		ClubID:      1,
		HeadID:      3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if web.ID <= 0 || web.Name != "Web Development" || web.ClubID != 1 || web.HeadID != 3 {
		t.Fatalf("unexpected committee: %+v", web)
	}

	events, err := src.Create(ctx, committeesource.CreateCommitteeRequest{Name: "Events", ClubID: 2})
	if err != nil {
		t.Fatalf("Create events: %v", err)
	}
	if events.HeadID != 0 {
		t.Fatalf("expected no head, got %d", events.HeadID)
	}

	list, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != web.ID || list[1].ID != events.ID {
		t.Fatalf("unexpected list: %#v", list)
	}

	updated, err := src.Update(ctx, web.ID, committeesource.UpdateCommitteeRequest{
		Description: domain.Some("Site and tooling"),
		HeadID:      domain.Null[domain.BoardMemberID](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Web Development" || updated.Description != "Site and tooling" || updated.HeadID != 0 {
		t.Fatalf("unexpected updated committee: %+v", updated)
	}

	got, err := src.Get(ctx, web.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.HeadID != 0 || got.Description != "Site and tooling" {
		t.Fatalf("update not persisted: %+v", got)
	}

	_, err = src.Update(ctx, events.ID+1000, committeesource.UpdateCommitteeRequest{Name: domain.Some("x")})
	requireNotFound(t, "Update missing", err, committeesource.ErrNotFound)

	if err := src.Delete(ctx, events.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	requireNotFound(t, "Delete twice", src.Delete(ctx, events.ID), committeesource.ErrNotFound)
	_, err = src.Get(ctx, events.ID)
	requireNotFound(t, "Get deleted", err, committeesource.ErrNotFound)
}
