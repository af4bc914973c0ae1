package httpapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// create answers a POST with 201 and the created resource.
//
// When the request carries an Idempotency-Key:
// - Replay if same subject+key+route+bodyHash
// - Reject if same subject+key+route with a different bodyHash (409)
func (s *Server) create(w http.ResponseWriter, r *http.Request, route string, body any, run func(ctx context.Context) (any, error)) {
	ctx := r.Context()
	key := strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
	if key == "" || s.Idem == nil {
		out, err := run(ctx)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
		return
	}

	bodyHash, err := hashBody(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sub, _ := SubjectFromContext(ctx)
	metaFP := idempotency.Fingerprint{
		Key:      idempotency.Key(key),
		Subject:  sub,
		Method:   http.MethodPost,
		Route:    route,
		BodyHash: "",
	}
	if meta, ok, err := s.Idem.Get(ctx, metaFP); err != nil {
		s.writeError(w, r, err)
		return
	} else if ok {
		if string(meta.Body) != bodyHash {
			writeOASError(w, r, http.StatusConflict, codeIdempotencyKeyReuse, "idempotency key reuse with different payload", nil)
			return
		}
	} else {
		_ = s.Idem.Put(ctx, metaFP, idempotency.Record{
			StatusCode:  0,
			ContentType: "text/plain",
			Body:        []byte(bodyHash),
			CreatedAt:   s.clk.Now(),
		})
	}

	respFP := metaFP
	respFP.BodyHash = bodyHash
	if rec, ok, err := s.Idem.Get(ctx, respFP); err != nil {
		s.writeError(w, r, err)
		return
	} else if ok && rec.StatusCode == http.StatusCreated && strings.HasPrefix(rec.ContentType, "application/json") {
		w.Header().Set("Content-Type", rec.ContentType)
		w.Header().Set(headerReplayed, "true")
		w.WriteHeader(rec.StatusCode)
		_, _ = w.Write(rec.Body)
		return
	}

	out, err := run(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := json.Marshal(out)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// Store successful response for replay.
	_ = s.Idem.Put(ctx, respFP, idempotency.Record{
		StatusCode:  http.StatusCreated,
		ContentType: "application/json",
		Body:        b,
		CreatedAt:   s.clk.Now(),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(append(b, '\n'))
}

func hashBody(body any) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
