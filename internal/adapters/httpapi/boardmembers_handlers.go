package httpapi

import (
	"context"
	"net/http"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/app/boardmembers"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

func (s *Server) listBoardMembers(w http.ResponseWriter, r *http.Request) {
	bs, err := s.BoardMembers.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]oas.BoardMember, 0, len(bs))
	for _, b := range bs {
		wire, err := oas.BoardMemberFromDomain(b)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out = append(out, wire)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getBoardMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.BoardMembers.Get(r.Context(), domain.BoardMemberID(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeBoardMember(w, r, b)
}

func (s *Server) createBoardMember(w http.ResponseWriter, r *http.Request) {
	var body oas.CreateBoardMemberRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.create(w, r, "POST /board-members", body, func(ctx context.Context) (any, error) {
		req, err := boardmembers.NormalizeCreateBoardMember(body.ToPort())
		if err != nil {
			return nil, err
		}
		if req.Password, err = s.hashPassword("password", req.Password); err != nil {
			return nil, err
		}
		b, err := s.BoardMembers.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		wire, err := oas.BoardMemberFromDomain(b)
		if err != nil {
			return nil, err
		}
		return wire, nil
	})
}

func (s *Server) updateBoardMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body oas.UpdateBoardMemberRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := boardmembers.NormalizeUpdateBoardMember(body.ToPort())
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
	b, err := s.BoardMembers.Update(r.Context(), domain.BoardMemberID(id), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeBoardMember(w, r, b)
}

func (s *Server) deleteBoardMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.BoardMembers.Delete(r.Context(), domain.BoardMemberID(id)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeBoardMember(w http.ResponseWriter, r *http.Request, b domain.BoardMember) {
	wire, err := oas.BoardMemberFromDomain(b)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire)
}
