package httpapi

import (
	"context"
	"net/http"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/app/memberships"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

func (s *Server) listMemberships(w http.ResponseWriter, r *http.Request) {
	ms, err := s.Memberships.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]oas.Membership, 0, len(ms))
	for _, m := range ms {
		out = append(out, oas.MembershipFromDomain(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getMembership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.Memberships.Get(r.Context(), domain.MembershipID(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.MembershipFromDomain(m))
}

func (s *Server) createMembership(w http.ResponseWriter, r *http.Request) {
	var body oas.MembershipRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.create(w, r, "POST /applications", body, func(ctx context.Context) (any, error) {
		req := body.ToPort()
		if err := memberships.ValidateMembershipRequest(req); err != nil {
			return nil, err
		}
		m, err := s.Memberships.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return oas.MembershipFromDomain(m), nil
	})
}

func (s *Server) deleteMembership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Memberships.Delete(r.Context(), domain.MembershipID(id)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
