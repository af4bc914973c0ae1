package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	platformclock "github.com/nu-student-clubs/clubs-admin/internal/platform/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/adminsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/boardmembersource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clubsource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/committeesource"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/membershipsource"
)

// Sources are the stores the reference backend serves.
type Sources struct {
	Clubs        clubsource.Source
	Memberships  membershipsource.Source
	Admins       adminsource.Source
	BoardMembers boardmembersource.Source
	Committees   committeesource.Source
}

// Server is the reference clubs backend. It validates requests with the same
// rules the client applies, hashes passwords and replays idempotent creates.
type Server struct {
	Sources
	Idem idempotency.Store

	hasher PasswordHasher
	clk    clock.Clock
	log    *zap.Logger
}

type ServerOption func(*Server)

func WithPasswordHasher(h PasswordHasher) ServerOption {
	return func(s *Server) { s.hasher = h }
}

func WithClock(clk clock.Clock) ServerOption {
	return func(s *Server) { s.clk = clk }
}

func WithLogger(l *zap.Logger) ServerOption {
	return func(s *Server) { s.log = l }
}

func NewServer(src Sources, idem idempotency.Store, opts ...ServerOption) *Server {
	s := &Server{
		Sources: src,
		Idem:    idem,
		hasher:  BcryptHasher{},
		clk:     platformclock.NewSystemClock(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return apperr.Validation("missing request body", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid request body", map[string]any{"cause": err.Error()})
	}
	return nil
}

// pathID binds the {id} path parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, apperr.Validation("invalid id", map[string]any{"id": chi.URLParam(r, "id")})
	}
	if id <= 0 {
		return 0, apperr.Validation("id must be positive", map[string]any{"id": id})
	}
	return id, nil
}

// queryInt binds an optional integer query parameter, keeping def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := def
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return 0, apperr.Validation(fmt.Sprintf("invalid %s", name), map[string]any{name: r.URL.Query().Get(name)})
	}
	return v, nil
}

func queryString(r *http.Request, name string) (string, error) {
	var v string
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return "", apperr.Validation(fmt.Sprintf("invalid %s", name), nil)
	}
	return v, nil
}

// hashPassword hashes pw for storage; an over-long password is a validation error.
func (s *Server) hashPassword(field, pw string) (string, error) {
	h, err := s.hasher.Hash(pw)
	if errors.Is(err, ErrPasswordTooLong) {
		return "", apperr.Validation("validation failed", map[string]any{field: "is too long"})
	}
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", field, err)
	}
	return h, nil
}
