package clubs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clubstore"
	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/clubs"
	"github.com/nu-student-clubs/clubs-admin/internal/app/fallback"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
)

var errDown = fmt.Errorf("GET /clubs: connection refused: %w", fallback.ErrUnavailable)

// downSource fails every call the way an unreachable backend does.
type downSource struct{ calls int }

func (d *downSource) List(context.Context, int, int) (domain.Page[domain.Club], error) {
	d.calls++
	return domain.Page[domain.Club]{}, errDown
}
func (d *downSource) Get(context.Context, domain.ClubID) (domain.Club, error) {
	d.calls++
	return domain.Club{}, errDown
}
func (d *downSource) SearchByName(context.Context, string) ([]domain.Club, error) {
	d.calls++
	return nil, errDown
}
func (d *downSource) ListByCategory(context.Context, string) ([]domain.Club, error) {
	d.calls++
	return nil, errDown
}
func (d *downSource) Create(context.Context, clubsource.ClubRequest) (domain.Club, error) {
	d.calls++
	return domain.Club{}, errDown
}
func (d *downSource) Update(context.Context, domain.ClubID, clubsource.ClubRequest) (domain.Club, error) {
	d.calls++
	return domain.Club{}, errDown
}
func (d *downSource) Delete(context.Context, domain.ClubID) error {
	d.calls++
	return errDown
}

func testClock() *clock.ManualClock {
	return clock.NewManualClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
}

func newOffline(t *testing.T) (*clubs.Service, *downSource) {
	t.Helper()
	down := &downSource{}
	clk := testClock()
	return clubs.NewService(down, clubstore.NewStore(clk), zap.NewNop(), clk, fallback.Options{}), down
}

func validRequest() clubsource.ClubRequest {
	return clubsource.ClubRequest{
		Name:      "  Chess   Club ",
		President: "Omar Nabil",
		Email:     "chess@nu.edu.eg",
		Category:  "Academic",
	}
}

func TestService_GetFallsBackToSeed(t *testing.T) {
	t.Parallel()

	svc, down := newOffline(t)
	c, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get(1) err=%v", err)
	}
	if c.Name != "Tech Club" || c.President != "Ahmed Hassan" || c.Category != "Technology" {
		t.Fatalf("Get(1)=%+v", c)
	}
	if down.calls != 1 {
		t.Fatalf("remote calls=%d, want 1", down.calls)
	}

	_, err = svc.Get(context.Background(), 999)
	if !errors.Is(err, fallback.ErrNotFound) || !errors.Is(err, clubsource.ErrNotFound) {
		t.Fatalf("Get(999) err=%v, want ErrNotFound", err)
	}
}

func TestService_SearchFallsBack(t *testing.T) {
	t.Parallel()

	svc, _ := newOffline(t)
	found, err := svc.SearchByName(context.Background(), "tech")
	if err != nil {
		t.Fatalf("SearchByName() err=%v", err)
	}
	if len(found) != 1 || found[0].Name != "Tech Club" {
		t.Fatalf("SearchByName(tech)=%+v", found)
	}

	sports, err := svc.ListByCategory(context.Background(), "Sports")
	if err != nil || len(sports) != 1 || sports[0].ID != 3 {
		t.Fatalf("ListByCategory(Sports)=%+v err=%v", sports, err)
	}
}

func TestService_ListIsRepeatableAndPaged(t *testing.T) {
	t.Parallel()

	svc, _ := newOffline(t)
	a, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	b, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("List() not repeatable:\n%+v\n%+v", a, b)
	}

	p, err := svc.List(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("List(1,4) err=%v", err)
	}
	if p.TotalPages != 2 || len(p.Content) != 2 || p.Content[0].ID != 5 {
		t.Fatalf("List(1,4)=%+v", p)
	}

	p, err = svc.List(context.Background(), -3, 0)
	if err != nil || p.CurrentPage != 0 || len(p.Content) != 6 {
		t.Fatalf("List(-3,0)=%+v err=%v", p, err)
	}

	p, err = svc.List(context.Background(), math.MaxInt/2+1, 2)
	if err != nil || len(p.Content) != 0 || p.TotalElements != 6 || p.TotalPages != 3 {
		t.Fatalf("List(MaxInt/2+1,2)=%+v err=%v", p, err)
	}
}

func TestService_NonPositiveIDIsNotFound(t *testing.T) {
	t.Parallel()

	svc, down := newOffline(t)
	ctx := context.Background()
	for _, id := range []domain.ClubID{0, -1} {
		if _, err := svc.Get(ctx, id); !errors.Is(err, clubsource.ErrNotFound) {
			t.Fatalf("Get(%d) err=%v, want ErrNotFound", id, err)
		}
		if _, err := svc.Update(ctx, id, validRequest()); !errors.Is(err, fallback.ErrNotFound) {
			t.Fatalf("Update(%d) err=%v, want ErrNotFound", id, err)
		}
		if err := svc.Delete(ctx, id); !errors.Is(err, fallback.ErrNotFound) {
			t.Fatalf("Delete(%d) err=%v, want ErrNotFound", id, err)
		}
	}
	if down.calls != 0 {
		t.Fatalf("remote calls=%d, want 0", down.calls)
	}
}

func TestService_WritesPropagate(t *testing.T) {
	t.Parallel()

	svc, down := newOffline(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validRequest()); !errors.Is(err, fallback.ErrUnavailable) {
		t.Fatalf("Create() err=%v, want ErrUnavailable", err)
	}
	if _, err := svc.Update(ctx, 1, validRequest()); !errors.Is(err, fallback.ErrUnavailable) {
		t.Fatalf("Update() err=%v, want ErrUnavailable", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, fallback.ErrUnavailable) {
		t.Fatalf("Delete() err=%v, want ErrUnavailable", err)
	}
	if down.calls != 3 {
		t.Fatalf("remote calls=%d, want 3", down.calls)
	}

	// The local store is untouched.
	if _, err := svc.Get(ctx, 1); err != nil {
		t.Fatalf("Get(1) err=%v", err)
	}
	if st := svc.Status(); st.Diverged || st.FallbackWrites != 0 {
		t.Fatalf("Status()=%+v", st)
	}
}

func TestService_RemoteFirstWhenOnline(t *testing.T) {
	t.Parallel()

	clk := testClock()
	remote := clubstore.NewStoreFrom(clk, []domain.Club{{ID: 42, Name: "Remote Club"}})
	svc := clubs.NewService(remote, clubstore.NewStore(clk), zap.NewNop(), clk, fallback.Options{})

	c, err := svc.Get(context.Background(), 42)
	if err != nil || c.Name != "Remote Club" {
		t.Fatalf("Get(42)=%+v err=%v", c, err)
	}

	created, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() err=%v", err)
	}
	if created.ID != 43 || created.Name != "Chess Club" {
		t.Fatalf("Create()=%+v", created)
	}
	if st := svc.Status(); st.Mode != fallback.ModeOnline || st.FallbackReads != 0 {
		t.Fatalf("Status()=%+v", st)
	}
}

func TestService_ValidatesBeforeIO(t *testing.T) {
	t.Parallel()

	svc, down := newOffline(t)
	req := validRequest()
	req.Email = "not an email"
	req.Name = " "

	_, err := svc.Create(context.Background(), req)
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Status != 422 {
		t.Fatalf("Create() err=%v, want 422", err)
	}
	if _, ok := ae.Details["name"]; !ok {
		t.Fatalf("details=%v, want name", ae.Details)
	}
	if _, ok := ae.Details["email"]; !ok {
		t.Fatalf("details=%v, want email", ae.Details)
	}
	if !errors.Is(err, fallback.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation)=false")
	}
	if down.calls != 0 {
		t.Fatalf("remote calls=%d, want 0", down.calls)
	}
}
