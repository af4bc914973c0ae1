package idempotency

import (
	"context"
	"time"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

// DefaultTTL is how long a stored response stays replayable.
const DefaultTTL = 24 * time.Hour

// Key is the caller-provided idempotency key (Idempotency-Key header).
type Key string

// Fingerprint identifies a create request for idempotency purposes.
//
// Route is the HTTP method plus the route pattern, e.g. "POST /clubs". BodyHash
// is empty when the fingerprint only records which body hash a key was bound to.
type Fingerprint struct {
	Key      Key
	Subject  domain.SubjectID
	Method   string
	Route    string
	BodyHash string
}

// Record is the stored response we can replay for a duplicate request.
type Record struct {
	StatusCode  int
	ContentType string
	Body        []byte
	CreatedAt   time.Time
}

// Store persists idempotency records for replaying create responses on retries.
// Records older than the store's TTL are reported as missing.
type Store interface {
	Get(ctx context.Context, fp Fingerprint) (Record, bool, error)
	Put(ctx context.Context, fp Fingerprint, rec Record) error
}
