// Package remote implements the data source ports over the clubs REST API.
package remote

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// wrapNotFound tags a backend 404 with the entity-specific sentinel so callers
// can match either clubsource.ErrNotFound (etc.) or source.ErrNotFound.
func wrapNotFound(err, notFound error) error {
	if err != nil && errors.Is(err, source.ErrNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return err
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
