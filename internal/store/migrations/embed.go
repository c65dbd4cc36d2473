package migrations

import "embed"

// FS contains embedded SQLite migrations for visitor storage.
//
//go:embed *.sql
var FS embed.FS
