// Package migrations embeds the schema migration files for the
// content database.
package migrations

import "embed"

// FS holds the versioned .sql files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
