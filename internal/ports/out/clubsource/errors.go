package clubsource

import (
	"fmt"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// ErrNotFound indicates the requested club does not exist.
var ErrNotFound = fmt.Errorf("club %w", source.ErrNotFound)
