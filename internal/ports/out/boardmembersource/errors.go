package boardmembersource

import (
	"fmt"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

var (
	// ErrNotFound indicates the requested board member does not exist.
	ErrNotFound = fmt.Errorf("board member %w", source.ErrNotFound)

	// ErrInvalidJoinDate is returned by stores that reject a join date they cannot parse.
	ErrInvalidJoinDate = fmt.Errorf("board member join date: %w", source.ErrValidation)
)
