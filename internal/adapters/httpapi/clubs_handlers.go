package httpapi

import (
	"context"
	"net/http"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/app/clubs"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

const defaultPageSize = 10

func (s *Server) listClubs(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	size, err := queryInt(r, "size", defaultPageSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if page < 0 || size < 1 {
		s.writeError(w, r, apperr.Validation("page must be >= 0 and size >= 1", map[string]any{"page": page, "size": size}))
		return
	}
	p, err := s.Clubs.List(r.Context(), page, size)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.ClubPageFromDomain(p))
}

func (s *Server) getClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.Clubs.Get(r.Context(), domain.ClubID(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.ClubFromDomain(c))
}

func (s *Server) searchClubs(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cs, err := s.Clubs.SearchByName(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.ClubsFromDomain(cs))
}

func (s *Server) clubsByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := queryString(r, "category")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cs, err := s.Clubs.ListByCategory(r.Context(), category)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.ClubsFromDomain(cs))
}

func (s *Server) createClub(w http.ResponseWriter, r *http.Request) {
	var body oas.ClubRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.create(w, r, "POST /clubs", body, func(ctx context.Context) (any, error) {
		req, err := clubs.NormalizeClubRequest(body.ToPort())
		if err != nil {
			return nil, err
		}
		c, err := s.Clubs.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return oas.ClubFromDomain(c), nil
	})
}

func (s *Server) updateClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body oas.ClubRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := clubs.NormalizeClubRequest(body.ToPort())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.Clubs.Update(r.Context(), domain.ClubID(id), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.ClubFromDomain(c))
}

func (s *Server) deleteClub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Clubs.Delete(r.Context(), domain.ClubID(id)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
