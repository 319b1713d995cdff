package migrations

import "embed"

// FS contains the embedded SQLite migrations for the dictionary store.
//
//go:embed *.sql
var FS embed.FS
