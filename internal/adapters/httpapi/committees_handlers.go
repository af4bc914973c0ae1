package httpapi

import (
	"context"
	"net/http"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/app/committees"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

func (s *Server) listCommittees(w http.ResponseWriter, r *http.Request) {
	cs, err := s.Committees.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]oas.Committee, 0, len(cs))
	for _, c := range cs {
		out = append(out, oas.CommitteeFromDomain(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getCommittee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.Committees.Get(r.Context(), domain.CommitteeID(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.CommitteeFromDomain(c))
}

func (s *Server) createCommittee(w http.ResponseWriter, r *http.Request) {
	var body oas.CreateCommitteeRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.create(w, r, "POST /committees", body, func(ctx context.Context) (any, error) {
		req, err := committees.NormalizeCreateCommittee(body.ToPort())
		if err != nil {
			return nil, err
		}
		c, err := s.Committees.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return oas.CommitteeFromDomain(c), nil
	})
}

func (s *Server) updateCommittee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body oas.UpdateCommitteeRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := committees.NormalizeUpdateCommittee(body.ToPort())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.Committees.Update(r.Context(), domain.CommitteeID(id), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.CommitteeFromDomain(c))
}

func (s *Server) deleteCommittee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Committees.Delete(r.Context(), domain.CommitteeID(id)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
