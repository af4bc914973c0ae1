package itest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/httpapi"
	memadminstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/adminstore"
	memboardmemberstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/boardmemberstore"
	memclock "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	memclubstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clubstore"
	memcommitteestore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/committeestore"
	memidempotency "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/idempotency"
	memmembershipstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/membershipstore"
	pgadminstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/adminstore"
	pgboardmemberstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/boardmemberstore"
	pgclubstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/clubstore"
	pgcommitteestore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/committeestore"
	pgidempotency "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/idempotency"
	pgmembershipstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/membershipstore"
	postgres_testutil "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/testutil"
	idempotencyport "github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
)

type backend string

const (
	backendMemory   backend = "memory"
	backendPostgres backend = "postgres"
)

func backendsFromEnv(t *testing.T) []backend {
	t.Helper()
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ITEST_BACKEND"))) {
	case "", "memory":
		return []backend{backendMemory}
	case "postgres":
		return []backend{backendPostgres}
	case "all":
		return []backend{backendMemory, backendPostgres}
	default:
		t.Fatalf("unknown ITEST_BACKEND value (expected memory|postgres|all)")
		return nil
	}
}

type testServer struct {
	baseURL string
	client  *http.Client
}

func newTestServer(t *testing.T, b backend) *testServer {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	var (
		src       httpapi.Sources
		idemStore idempotencyport.Store
	)

	// Both backends start empty so tests see identical ids and counts.
	switch b {
	case backendPostgres:
		pool := postgres_testutil.OpenMigratedPool(t)
		src = httpapi.Sources{
			Clubs:        pgclubstore.NewStore(pool, clk),
			Memberships:  pgmembershipstore.NewStore(pool, clk),
			Admins:       pgadminstore.NewStore(pool, clk),
			BoardMembers: pgboardmemberstore.NewStore(pool),
			Committees:   pgcommitteestore.NewStore(pool),
		}
		idemStore = pgidempotency.NewStore(pool, clk, 0)
	case backendMemory:
		src = httpapi.Sources{
			Clubs:        memclubstore.NewStoreFrom(clk, nil),
			Memberships:  memmembershipstore.NewStoreFrom(clk, nil),
			Admins:       memadminstore.NewStoreFrom(clk, nil),
			BoardMembers: memboardmemberstore.NewStoreFrom(nil),
			Committees:   memcommitteestore.NewStoreFrom(nil),
		}
		idemStore = memidempotency.NewStore(clk, 0)
	default:
		t.Fatalf("unknown backend: %s", b)
	}

	api := httpapi.NewServer(src, idemStore,
		httpapi.WithClock(clk),
		httpapi.WithPasswordHasher(httpapi.BcryptHasher{Cost: bcrypt.MinCost}),
	)

	// Integration tests use the dev auth middleware to stay fully local and deterministic.
	// The empty default subject means requests MUST provide X-Debug-Subject.
	authMW := httpapi.NewDevAuthMiddleware("")
	handler := httpapi.NewRouterWithOptions(api, httpapi.RouterOptions{AuthMiddleware: authMW})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

func (s *testServer) doJSON(t *testing.T, method string, path string, subject string, body any) (int, []byte, http.Header) {
	t.Helper()
	return s.doJSONWithHeaders(t, method, path, subject, body, nil)
}

func (s *testServer) doJSONWithHeaders(t *testing.T, method string, path string, subject string, body any, headers map[string]string) (int, []byte, http.Header) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.url(path), r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if subject != "" {
		req.Header.Set("X-Debug-Subject", subject)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out, resp.Header
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mustUnmarshal[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, string(b))
	}
	return out
}

func requireErrorCode(t *testing.T, status int, body []byte, wantStatus int, wantCode string) {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("status=%d want=%d body=%s", status, wantStatus, string(body))
	}
	got := mustUnmarshal[errorResponse](t, body)
	if got.Error.Code != wantCode {
		t.Fatalf("error.code=%q want=%q body=%s", got.Error.Code, wantCode, string(body))
	}
}

func requireHeaderPresent(t *testing.T, h http.Header, key string) {
	t.Helper()
	if strings.TrimSpace(h.Get(key)) == "" {
		t.Fatalf("expected header %q to be present", key)
	}
}
