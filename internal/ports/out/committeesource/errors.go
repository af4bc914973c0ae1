package committeesource

import (
	"fmt"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// ErrNotFound indicates the requested committee does not exist.
var ErrNotFound = fmt.Errorf("committee %w", source.ErrNotFound)
