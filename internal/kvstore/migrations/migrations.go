// Package migrations embeds the goose migrations for the appstate table.
// The schema is dialect-neutral; the caller sets the goose dialect for the
// driver in use.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
