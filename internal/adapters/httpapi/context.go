package httpapi

import (
	"context"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

type subjectKey struct{}

// WithSubject stores the authenticated caller. Idempotency records are scoped to it.
func WithSubject(ctx context.Context, sub domain.SubjectID) context.Context {
	return context.WithValue(ctx, subjectKey{}, sub)
}

func SubjectFromContext(ctx context.Context) (domain.SubjectID, bool) {
	v, ok := ctx.Value(subjectKey{}).(domain.SubjectID)
	return v, ok && v != ""
}
