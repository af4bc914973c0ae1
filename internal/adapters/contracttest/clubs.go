package contracttest

import (
	"context"
	"math"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
)

func RunClubSource(t *testing.T, newSource ClubSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src := open(t, newSource)

	empty, err := src.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("List empty: %v", err)
	}
	if empty.TotalElements != 0 || len(empty.Content) != 0 || empty.TotalPages != 0 {
		t.Fatalf("expected empty page, got %+v", empty)
	}

	reqs := []clubsource.ClubRequest{
		{Name: "Chess Club", Description: "Weekly tournaments", President: "Omar Nabil", Email: "chess@nu.edu.eg", Category: "Academic"},
		{Name: "Drama Club", Description: "Stage productions", President: "Laila Samir", Email: "drama@nu.edu.eg", Category: "Arts"},
		{Name: "Robotics Society", Description: "Builds robots", President: "Karim Fathy", Email: "robotics@nu.edu.eg", Category: "Academic"},
	}
	created := make([]domain.Club, 0, len(reqs))
	for _, r := range reqs {
		c, err := src.Create(ctx, r)
		if err != nil {
			t.Fatalf("Create %q: %v", r.Name, err)
		}
		if c.ID <= 0 || c.Name != r.Name || c.Category != r.Category || c.Email != r.Email {
			t.Fatalf("unexpected created club: %+v", c)
		}
		if c.CreatedAt == "" || c.UpdatedAt == "" {
			t.Fatalf("expected timestamps, got %+v", c)
		}
		if n := len(created); n > 0 && c.ID <= created[n-1].ID {
			t.Fatalf("expected ascending ids, got %d after %d", c.ID, created[n-1].ID)
		}
		created = append(created, c)
	}

	got, err := src.Get(ctx, created[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Chess Club" || got.President != "Omar Nabil" || got.Description != "Weekly tournaments" {
		t.Fatalf("unexpected club: %+v", got)
	}

	// Case-insensitive substring search, ID order.
	found, err := src.SearchByName(ctx, "CLUB")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(found) != 2 || found[0].ID != created[0].ID || found[1].ID != created[1].ID {
		t.Fatalf("unexpected search result: %#v", found)
	}
	found, err = src.SearchByName(ctx, "nothing matches")
	if err != nil || len(found) != 0 {
		t.Fatalf("expected no matches, got %d err=%v", len(found), err)
	}

	// Exact category match.
	academic, err := src.ListByCategory(ctx, "Academic")
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(academic) != 2 || academic[0].ID != created[0].ID || academic[1].ID != created[2].ID {
		t.Fatalf("unexpected category result: %#v", academic)
	}
	if lower, err := src.ListByCategory(ctx, "academic"); err != nil || len(lower) != 0 {
		t.Fatalf("expected exact category match, got %d err=%v", len(lower), err)
	}

	// Paging.
	p0, err := src.List(ctx, 0, 2)
	if err != nil {
		t.Fatalf("List page 0: %v", err)
	}
	if len(p0.Content) != 2 || p0.TotalElements != 3 || p0.TotalPages != 2 || p0.CurrentPage != 0 {
		t.Fatalf("unexpected page 0: %+v", p0)
	}
	p1, err := src.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if len(p1.Content) != 1 || p1.Content[0].ID != created[2].ID || p1.CurrentPage != 1 {
		t.Fatalf("unexpected page 1: %+v", p1)
	}
	p5, err := src.List(ctx, 5, 2)
	if err != nil {
		t.Fatalf("List page 5: %v", err)
	}
	if len(p5.Content) != 0 || p5.TotalElements != 3 {
		t.Fatalf("unexpected out-of-range page: %+v", p5)
	}
	huge, err := src.List(ctx, math.MaxInt/2+1, 2)
	if err != nil {
		t.Fatalf("List huge page: %v", err)
	}
	if len(huge.Content) != 0 || huge.TotalElements != 3 || huge.TotalPages != 2 {
		t.Fatalf("unexpected huge page: %+v", huge)
	}

	// Full-replacement update keeps CreatedAt.
	upd := reqs[0]
	upd.Name = "Chess & Strategy Club"
	upd.Description = ""
	updated, err := src.Update(ctx, created[0].ID, upd)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created[0].ID || updated.Name != upd.Name || updated.Description != "" {
		t.Fatalf("unexpected updated club: %+v", updated)
	}
	if updated.CreatedAt != created[0].CreatedAt {
		t.Fatalf("CreatedAt changed: %q -> %q", created[0].CreatedAt, updated.CreatedAt)
	}

	_, err = src.Update(ctx, created[2].ID+1000, upd)
	requireNotFound(t, "Update missing", err, clubsource.ErrNotFound)

	if err := src.Delete(ctx, created[1].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	requireNotFound(t, "Delete twice", src.Delete(ctx, created[1].ID), clubsource.ErrNotFound)
	_, err = src.Get(ctx, created[1].ID)
	requireNotFound(t, "Get deleted", err, clubsource.ErrNotFound)

	after, err := src.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if after.TotalElements != 2 {
		t.Fatalf("expected 2 clubs after delete, got %+v", after)
	}
}
