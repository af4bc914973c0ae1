package httpapi

import (
	"context"
	"net/http"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/app/admins"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

func (s *Server) listAdmins(w http.ResponseWriter, r *http.Request) {
	as, err := s.Admins.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]oas.Admin, 0, len(as))
	for _, a := range as {
		out = append(out, oas.AdminFromDomain(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	a, err := s.Admins.Get(r.Context(), domain.AdminID(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.AdminFromDomain(a))
}

func (s *Server) createAdmin(w http.ResponseWriter, r *http.Request) {
	var body oas.CreateAdminRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.create(w, r, "POST /admins", body, func(ctx context.Context) (any, error) {
		req, err := admins.NormalizeCreateAdmin(body.ToPort())
		if err != nil {
			return nil, err
		}
		if req.Password, err = s.hashPassword("password", req.Password); err != nil {
			return nil, err
		}
		a, err := s.Admins.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return oas.AdminFromDomain(a), nil
	})
}

func (s *Server) updateAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body oas.UpdateAdminRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := admins.NormalizeUpdateAdmin(body.ToPort())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Password.HasValue() {
		h, err := s.hashPassword("password", req.Password.Value())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		req.Password = domain.Some(h)
	}
	a, err := s.Admins.Update(r.Context(), domain.AdminID(id), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, oas.AdminFromDomain(a))
}

func (s *Server) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Admins.Delete(r.Context(), domain.AdminID(id)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
