// Package migrations embeds the goose SQL migrations for the reference backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
