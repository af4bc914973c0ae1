package membershipsource

import (
	"fmt"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// ErrNotFound indicates the requested membership does not exist.
var ErrNotFound = fmt.Errorf("membership %w", source.ErrNotFound)
