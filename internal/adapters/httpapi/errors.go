package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/oas"
	"github.com/nu-student-clubs/clubs-admin/internal/app/apperr"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

const (
	codeUnauthorized        = "UNAUTHORIZED"
	codeNotFound            = apperr.CodeNotFound
	codeValidation          = apperr.CodeValidation
	codeIdempotencyKeyReuse = "IDEMPOTENCY_KEY_REUSE"
	codeInternal            = "INTERNAL_ERROR"
)

func writeOASError(w http.ResponseWriter, r *http.Request, status int, code string, message string, details map[string]any) {
	var er oas.ErrorResponse
	er.Error.Code = code
	er.Error.Message = message
	if details != nil {
		er.Error.Details = nullable.NewNullableWithValue(map[string]any(details))
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		er.Error.RequestId = nullable.NewNullableWithValue(rid)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(er)
}

// writeError maps an application or store error onto the error envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ae := (*apperr.Error)(nil); errors.As(err, &ae) {
		writeOASError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}
	switch {
	case errors.Is(err, source.ErrNotFound):
		writeOASError(w, r, http.StatusNotFound, codeNotFound, err.Error(), nil)
	case errors.Is(err, source.ErrValidation):
		writeOASError(w, r, http.StatusUnprocessableEntity, codeValidation, err.Error(), nil)
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeOASError(w, r, http.StatusInternalServerError, codeInternal, "internal error", nil)
	}
}
