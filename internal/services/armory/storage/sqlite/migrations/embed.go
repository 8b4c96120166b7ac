package migrations

import "embed"

// FS contains embedded SQLite migrations for the exported catalog.
//
//go:embed *.sql
var FS embed.FS
