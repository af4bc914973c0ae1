package contracttest

import (
	"context"
	"slices"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
)

func RunAdminSource(t *testing.T, newSource AdminSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src := open(t, newSource)

	dept := "Student Affairs"
	level := "STANDARD"
	a, err := src.Create(ctx, adminsource.CreateAdminRequest{
		Email:       "nour@nu.edu.eg",
		Password:    "s3cret-pass",
		FirstName:   "Nour",
		LastName:    "Hassan",
		Department:  &dept,
		AdminLevel:  &level,
		Permissions: []string{domain.PermissionManageClubs},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID <= 0 || a.Email != "nour@nu.edu.eg" || a.FirstName != "Nour" || !a.Active {
		t.Fatalf("unexpected admin: %+v", a)
	}
	if !a.CanManageClubs || a.CanManageAdmins || a.CanManageApplications {
		t.Fatalf("unexpected permissions: %+v", a.Permissions())
	}
	if !slices.Contains(a.Roles, domain.RoleAdmin) {
		t.Fatalf("expected ADMIN role, got %v", a.Roles)
	}
	if a.Department == nil || *a.Department != dept {
		t.Fatalf("unexpected department: %v", a.Department)
	}

	b, err := src.Create(ctx, adminsource.CreateAdminRequest{
		Email:     "sara@nu.edu.eg",
		Password:  "another-pass",
		FirstName: "Sara",
		LastName:  "Ali",
	})
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}
	if b.ID <= a.ID {
		t.Fatalf("expected ascending ids, got %d after %d", b.ID, a.ID)
	}

	list, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Fatalf("unexpected list: %#v", list)
	}

	// Partial update: unspecified fields keep their values, null clears.
	updated, err := src.Update(ctx, a.ID, adminsource.UpdateAdminRequest{
		FirstName:   domain.Some("Nourhan"),
		Department:  domain.Null[string](),
		Permissions: domain.Some([]string{domain.PermissionManageAdmins, domain.PermissionManageApplications}),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FirstName != "Nourhan" || updated.LastName != "Hassan" || updated.Email != "nour@nu.edu.eg" {
		t.Fatalf("unexpected names after update: %+v", updated)
	}
	if updated.Department != nil {
		t.Fatalf("expected department cleared, got %q", *updated.Department)
	}
	if updated.AdminLevel == nil || *updated.AdminLevel != level {
		t.Fatalf("expected admin level kept, got %v", updated.AdminLevel)
	}
	if updated.CanManageClubs || !updated.CanManageAdmins || !updated.CanManageApplications {
		t.Fatalf("unexpected permissions after update: %v", updated.Permissions())
	}

	got, err := src.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FirstName != "Nourhan" {
		t.Fatalf("update not persisted: %+v", got)
	}

	_, err = src.Update(ctx, b.ID+1000, adminsource.UpdateAdminRequest{FirstName: domain.Some("x")})
	requireNotFound(t, "Update missing", err, adminsource.ErrNotFound)

	if err := src.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	requireNotFound(t, "Delete twice", src.Delete(ctx, b.ID), adminsource.ErrNotFound)
	_, err = src.Get(ctx, b.ID)
	requireNotFound(t, "Get deleted", err, adminsource.ErrNotFound)
}
