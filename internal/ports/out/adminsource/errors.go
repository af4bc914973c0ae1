package adminsource

import (
	"fmt"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// ErrNotFound indicates the requested admin does not exist.
var ErrNotFound = fmt.Errorf("admin %w", source.ErrNotFound)
