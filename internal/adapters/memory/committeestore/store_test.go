package committeestore

import (
	"context"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/contracttest"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
)

func TestContract_CommitteeSource(t *testing.T) {
	contracttest.RunCommitteeSource(t, func(t *testing.T) (committeesource.Source, func()) {
		t.Helper()
		return NewStoreFrom(nil), nil
	})
}

func TestStore_SeededCommittees(t *testing.T) {
	t.Parallel()

	s := NewStore()
	c, err := s.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get(1) err=%v", err)
	}
	if c.Name != "Web Development" || c.HeadID != 2 {
		t.Fatalf("Get(1)=%+v", c)
	}
}

func TestUpdateRequest_NullDescriptionClears(t *testing.T) {
	t.Parallel()

	c := Seed()[0]
	committeesource.UpdateCommitteeRequest{Description: domain.Null[string]()}.ApplyTo(&c)
	if c.Description != "" || c.Name != "Web Development" {
		t.Fatalf("ApplyTo()=%+v", c)
	}
}
