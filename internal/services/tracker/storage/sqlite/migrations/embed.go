package migrations

import "embed"

// FS contains embedded SQLite migrations for exercise storage.
//
//go:embed *.sql
var FS embed.FS
