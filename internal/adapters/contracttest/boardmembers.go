package contracttest

import (
	"context"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
)

func RunBoardMemberSource(t *testing.T, newSource BoardMemberSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src := open(t, newSource)

	b, err := src.Create(ctx, boardmembersource.CreateBoardMemberRequest{
		Email:     "hana@nu.edu.eg",
		Password:  "board-pass",
		FirstName: "Hana",
		LastName:  "Mostafa",
		Position:  "President",
		JoinDate:  "2024-09-01",
		Season:    "2024",
		ClubID:    1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID <= 0 || b.Position != "President" || b.JoinDate != "2024-09-01" || b.Season != "2024" || b.ClubID != 1 {
		t.Fatalf("unexpected board member: %+v", b)
	}
	if !b.IsActive {
		t.Fatalf("expected new board member to be active")
	}

	c, err := src.Create(ctx, boardmembersource.CreateBoardMemberRequest{
		Email:     "ali@nu.edu.eg",
		Password:  "board-pass-2",
		FirstName: "Ali",
		LastName:  "Tarek",
		Position:  "Treasurer",
		JoinDate:  "2024-10-15",
		Season:    "2024",
		ClubID:    2,
	})
	if err != nil {
		t.Fatalf("Create c: %v", err)
	}

	list, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != b.ID || list[1].ID != c.ID {
		t.Fatalf("unexpected list: %#v", list)
	}

	updated, err := src.Update(ctx, b.ID, boardmembersource.UpdateBoardMemberRequest{
		Position: domain.Some("Vice President"),
		IsActive: domain.Some(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Position != "Vice President" || updated.IsActive || updated.FirstName != "Hana" || updated.JoinDate != "2024-09-01" {
		t.Fatalf("unexpected updated board member: %+v", updated)
	}

	got, err := src.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Position != "Vice President" || got.IsActive {
		t.Fatalf("update not persisted: %+v", got)
	}

	_, err = src.Update(ctx, c.ID+1000, boardmembersource.UpdateBoardMemberRequest{Position: domain.Some("x")})
	requireNotFound(t, "Update missing", err, boardmembersource.ErrNotFound)

	if err := src.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	requireNotFound(t, "Delete twice", src.Delete(ctx, c.ID), boardmembersource.ErrNotFound)
	_, err = src.Get(ctx, c.ID)
	requireNotFound(t, "Get deleted", err, boardmembersource.ErrNotFound)
}
