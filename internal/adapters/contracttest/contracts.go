// Package contracttest holds behavioural suites shared by every implementation of
// the outbound ports: the in-memory fallback stores, the remote HTTP sources and
// the Postgres stores behind the reference backend.
//
// Factories must return an EMPTY source; the suites create everything they read.
package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
	idempotencyport "github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

type CleanupFunc = func()

type ClubSourceFactory func(t *testing.T) (clubsource.Source, CleanupFunc)
type MembershipSourceFactory func(t *testing.T) (membershipsource.Source, CleanupFunc)
type AdminSourceFactory func(t *testing.T) (adminsource.Source, CleanupFunc)
type BoardMemberSourceFactory func(t *testing.T) (boardmembersource.Source, CleanupFunc)
type CommitteeSourceFactory func(t *testing.T) (committeesource.Source, CleanupFunc)
type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

func open[S any](t *testing.T, f func(t *testing.T) (S, CleanupFunc)) S {
	t.Helper()
	s, cleanup := f(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}
	return s
}

// requireNotFound checks err matches both the entity sentinel and source.ErrNotFound.
func requireNotFound(t *testing.T, what string, err, entity error) {
	t.Helper()
	if !errors.Is(err, entity) {
		t.Fatalf("%s: expected %v, got %v", what, entity, err)
	}
	if !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("%s: expected source.ErrNotFound in chain, got %v", what, err)
	}
}

func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store := open(t, newStore)

	fp := idempotencyport.Fingerprint{
		Key:      "k-1",
		Subject:  domain.SubjectID("sub-1"),
		Method:   "POST",
		Route:    "POST /clubs",
		BodyHash: "",
	}
	rec := idempotencyport.Record{
		StatusCode:  0,
		ContentType: "text/plain",
		Body:        []byte("hash-abc"),
	}
	if _, ok, err := store.Get(ctx, fp); err != nil || ok {
		t.Fatalf("Get before Put: ok=%v err=%v", ok, err)
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(got.Body) != "hash-abc" || got.ContentType != "text/plain" || got.StatusCode != 0 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Overwrite semantics.
	rec2 := rec
	rec2.Body = []byte("hash-def")
	if err := store.Put(ctx, fp, rec2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, ok, err = store.Get(ctx, fp)
	if err != nil || !ok || string(got.Body) != "hash-def" {
		t.Fatalf("expected overwritten record, got ok=%v err=%v body=%q", ok, err, string(got.Body))
	}

	// Any fingerprint component distinguishes records.
	other := fp
	other.Subject = "sub-2"
	if _, ok, err := store.Get(ctx, other); err != nil || ok {
		t.Fatalf("Get other subject: ok=%v err=%v", ok, err)
	}
	other = fp
	other.BodyHash = "deadbeef"
	if _, ok, err := store.Get(ctx, other); err != nil || ok {
		t.Fatalf("Get other body hash: ok=%v err=%v", ok, err)
	}
}
