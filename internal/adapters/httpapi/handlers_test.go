package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/adminstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/boardmemberstore"
	memclock "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clubstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/committeestore"
	memidempotency "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/idempotency"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/membershipstore"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

// newTestServer serves the seeded demo data.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewServer(Sources{
		Clubs:        clubstore.NewStore(clk),
		Memberships:  membershipstore.NewStore(clk),
		Admins:       adminstore.NewStore(clk),
		BoardMembers: boardmemberstore.NewStore(),
		Committees:   committeestore.NewStore(),
	}, memidempotency.NewStore(clk, 0),
		WithClock(clk),
		WithPasswordHasher(BcryptHasher{Cost: bcrypt.MinCost}),
	)
}

func do(t *testing.T, h http.Handler, method, path string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v body=%s", err, rec.Body.String())
	}
	return out
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status=%d want=%d body=%s", rec.Code, wantStatus, rec.Body.String())
	}
	er := decode[oas.ErrorResponse](t, rec)
	if er.Error.Code != wantCode {
		t.Fatalf("error.code=%q want=%q", er.Error.Code, wantCode)
	}
}

func TestClubs_ListPaging(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))

	rec := do(t, h, http.MethodGet, "/clubs?page=1&size=4", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	p := decode[oas.ClubPage](t, rec)
	if p.TotalElements != 6 || p.TotalPages != 2 || p.CurrentPage != 1 || len(p.Content) != 2 {
		t.Fatalf("unexpected page: %+v", p)
	}

	rec = do(t, h, http.MethodGet, "/clubs", nil, nil)
	if p := decode[oas.ClubPage](t, rec); len(p.Content) != 6 || p.CurrentPage != 0 {
		t.Fatalf("default paging: %+v", p)
	}

	requireErrorCode(t, do(t, h, http.MethodGet, "/clubs?size=0", nil, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	requireErrorCode(t, do(t, h, http.MethodGet, "/clubs?page=x", nil, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestClubs_GetSearchCategory(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))

	c := decode[oas.Club](t, do(t, h, http.MethodGet, "/clubs/1", nil, nil))
	if c.Name != "Tech Club" || c.President != "Ahmed Hassan" {
		t.Fatalf("unexpected club 1: %+v", c)
	}
	requireErrorCode(t, do(t, h, http.MethodGet, "/clubs/999", nil, nil), http.StatusNotFound, "NOT_FOUND")
	requireErrorCode(t, do(t, h, http.MethodGet, "/clubs/abc", nil, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	requireErrorCode(t, do(t, h, http.MethodGet, "/clubs/0", nil, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	found := decode[[]oas.Club](t, do(t, h, http.MethodGet, "/clubs/search?name=tech", nil, nil))
	if len(found) != 1 || found[0].Id != 1 {
		t.Fatalf("search tech: %+v", found)
	}
	byCat := decode[[]oas.Club](t, do(t, h, http.MethodGet, "/clubs/category?category=Technology", nil, nil))
	if len(byCat) == 0 {
		t.Fatalf("expected Technology clubs")
	}
	for _, c := range byCat {
		if c.Category != "Technology" {
			t.Fatalf("unexpected category: %+v", c)
		}
	}
}

func TestClubs_CreateIdempotentReplay(t *testing.T) {
	t.Parallel()

	h := NewRouterWithOptions(newTestServer(t), RouterOptions{AuthMiddleware: NewDevAuthMiddleware("dev|local")})
	body := map[string]any{
		"name":      "Chess Club",
		"president": "Mona Adel",
		"email":     "chess@nu.edu.eg",
		"category":  "Academic",
	}
	key := map[string]string{"Idempotency-Key": "key-1"}

	first := do(t, h, http.MethodPost, "/clubs", body, key)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: status=%d body=%s", first.Code, first.Body.String())
	}
	second := do(t, h, http.MethodPost, "/clubs", body, key)
	if second.Code != http.StatusCreated || second.Header().Get("Idempotent-Replayed") != "true" {
		t.Fatalf("second: status=%d replayed=%q", second.Code, second.Header().Get("Idempotent-Replayed"))
	}
	a, b := decode[oas.Club](t, first), decode[oas.Club](t, second)
	if a.Id != 7 || a.Id != b.Id {
		t.Fatalf("expected one club with id 7, got %d and %d", a.Id, b.Id)
	}
	if p := decode[oas.ClubPage](t, do(t, h, http.MethodGet, "/clubs?size=100", nil, nil)); p.TotalElements != 7 {
		t.Fatalf("replay created a duplicate: total=%d", p.TotalElements)
	}

	body["name"] = "Go Club"
	requireErrorCode(t, do(t, h, http.MethodPost, "/clubs", body, key), http.StatusConflict, "IDEMPOTENCY_KEY_REUSE")

	// Another subject may use the same key.
	other := map[string]string{"Idempotency-Key": "key-1", "X-Debug-Subject": "dev|other"}
	if rec := do(t, h, http.MethodPost, "/clubs", body, other); rec.Code != http.StatusCreated {
		t.Fatalf("other subject: status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestClubs_CreateValidation(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))
	rec := do(t, h, http.MethodPost, "/clubs", map[string]any{"name": "X", "president": "Y", "email": "not-an-email", "category": "Arts"}, nil)
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	er := decode[oas.ErrorResponse](t, rec)
	details, err := er.Error.Details.Get()
	if err != nil || details["email"] == nil {
		t.Fatalf("expected email detail, got %v err=%v", details, err)
	}
}

func TestClubs_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))
	rec := do(t, h, http.MethodPut, "/clubs/2", map[string]any{
		"name": "Art Society", "president": "Laila", "email": "art@nu.edu.eg", "category": "Arts",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if c := decode[oas.Club](t, rec); c.Id != 2 || c.Name != "Art Society" {
		t.Fatalf("unexpected update: %+v", c)
	}

	if rec := do(t, h, http.MethodDelete, "/clubs/2", nil, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status=%d", rec.Code)
	}
	requireErrorCode(t, do(t, h, http.MethodDelete, "/clubs/2", nil, nil), http.StatusNotFound, "NOT_FOUND")
}

func TestMemberships_CreateAndDelete(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))
	rec := do(t, h, http.MethodPost, "/applications", map[string]any{"userId": 1, "clubId": 2}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if m := decode[oas.Membership](t, rec); m.Id != 4 || m.ClubId != 2 {
		t.Fatalf("unexpected membership: %+v", m)
	}
	requireErrorCode(t, do(t, h, http.MethodPost, "/applications", map[string]any{"userId": 0, "clubId": 2}, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	if rec := do(t, h, http.MethodDelete, "/applications/2", nil, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status=%d", rec.Code)
	}
	if ms := decode[[]oas.Membership](t, do(t, h, http.MethodGet, "/applications", nil, nil)); len(ms) != 3 {
		t.Fatalf("expected 3 memberships, got %d", len(ms))
	}
	requireErrorCode(t, do(t, h, http.MethodGet, "/applications/2", nil, nil), http.StatusNotFound, "NOT_FOUND")
}

func TestAdmins_PasswordIsHashedAndNeverEchoed(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	h := NewRouter(s)
	rec := do(t, h, http.MethodPost, "/admins", map[string]any{
		"email":       "nour@nu.edu.eg",
		"password":    "s3cret-pass",
		"firstName":   "Nour",
		"lastName":    "Hassan",
		"permissions": []string{domain.PermissionManageClubs},
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status=%d body=%s", rec.Code, rec.Body.String())
	}
	raw := decode[map[string]any](t, rec)
	if _, ok := raw["password"]; ok {
		t.Fatalf("password echoed: %v", raw)
	}
	id := domain.AdminID(int64(raw["id"].(float64)))

	stored, err := s.Admins.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored password is not a bcrypt hash of the input: %v", err)
	}

	rec = do(t, h, http.MethodPut, "/admins/"+itoa(int64(id)), map[string]any{"password": "n3w-password"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status=%d body=%s", rec.Code, rec.Body.String())
	}
	stored, _ = s.Admins.Get(context.Background(), id)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("n3w-password")); err != nil {
		t.Fatalf("updated password not hashed: %v", err)
	}
}

func TestAdmins_UpdateRejectsNullEmail(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))
	requireErrorCode(t, do(t, h, http.MethodPut, "/admins/1", map[string]any{"email": nil}, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	requireErrorCode(t, do(t, h, http.MethodPut, "/admins/999", map[string]any{"firstName": "X"}, nil), http.StatusNotFound, "NOT_FOUND")
}

func TestBoardMembers_CreateUpdateDelete(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))
	rec := do(t, h, http.MethodPost, "/board-members", map[string]any{
		"email":     "hana@nu.edu.eg",
		"password":  "board-pass",
		"firstName": "Hana",
		"lastName":  "Mostafa",
		"position":  "Vice President",
		"joinDate":  "2024-09-01",
		"season":    "2024",
		"club":      map[string]any{"id": 1},
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status=%d body=%s", rec.Code, rec.Body.String())
	}
	b := decode[oas.BoardMember](t, rec)
	if b.Password != "" || b.ClubId != 1 || oas.FormatDate(b.JoinDate) != "2024-09-01" || !b.IsActive {
		t.Fatalf("unexpected board member: %+v", b)
	}

	path := "/board-members/" + itoa(b.Id)
	rec = do(t, h, http.MethodPut, path, map[string]any{"isActive": false}, nil)
	if got := decode[oas.BoardMember](t, rec); got.IsActive || got.Position != "Vice President" {
		t.Fatalf("unexpected update: %+v", got)
	}
	requireErrorCode(t, do(t, h, http.MethodPut, path, map[string]any{"joinDate": "01/09/2024"}, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	if rec := do(t, h, http.MethodDelete, path, nil, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status=%d", rec.Code)
	}
	requireErrorCode(t, do(t, h, http.MethodGet, path, nil, nil), http.StatusNotFound, "NOT_FOUND")
}

func TestCommittees_ClearHead(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestServer(t))
	rec := do(t, h, http.MethodPost, "/committees", map[string]any{
		"name": "Media", "description": "Photos", "club": map[string]any{"id": 2}, "headId": 1,
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status=%d body=%s", rec.Code, rec.Body.String())
	}
	c := decode[oas.Committee](t, rec)
	if c.HeadId == nil || *c.HeadId != 1 {
		t.Fatalf("expected head 1, got %+v", c)
	}

	rec = do(t, h, http.MethodPut, "/committees/"+itoa(c.Id), map[string]any{"headId": nil}, nil)
	if got := decode[oas.Committee](t, rec); got.HeadId != nil || got.Name != "Media" {
		t.Fatalf("expected head cleared, got %+v", got)
	}
	requireErrorCode(t, do(t, h, http.MethodPut, "/committees/"+itoa(c.Id), map[string]any{"name": nil}, nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	h := NewRouterWithOptions(newTestServer(t), RouterOptions{CORSOrigins: []string{"http://localhost:3000"}})
	req := httptest.NewRequest(http.MethodOptions, "/clubs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin=%q", got)
	}
}

func TestRouter_RequestLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := NewRouterWithOptions(newTestServer(t), RouterOptions{Logger: zap.New(core)})
	do(t, h, http.MethodGet, "/clubs/999", nil, nil)

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusNotFound) || fields["path"] != "/clubs/999" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func itoa(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func TestBoardMembers_MalformedStoredJoinDateIsInternalError(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	core, logs := observer.New(zap.ErrorLevel)
	s := NewServer(Sources{
		BoardMembers: boardmemberstore.NewStoreFrom([]domain.BoardMember{{
			ID: 1, Email: "sara@nu.edu.eg", FirstName: "Sara", LastName: "Adel",
			Position: "President", JoinDate: "15/01/2024", Season: "2024", ClubID: 1, IsActive: true,
		}}),
	}, memidempotency.NewStore(clk, 0), WithClock(clk), WithLogger(zap.New(core)))
	h := NewRouter(s)

	requireErrorCode(t, do(t, h, http.MethodGet, "/board-members/1", nil, nil), http.StatusInternalServerError, codeInternal)
	requireErrorCode(t, do(t, h, http.MethodGet, "/board-members", nil, nil), http.StatusInternalServerError, codeInternal)
	if logs.Len() != 2 {
		t.Fatalf("error logs=%d, want 2", logs.Len())
	}
}
