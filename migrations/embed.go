// Package migrations holds the numbered SQL files that build the users and
// exercises schema. Statements stay portable between SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
