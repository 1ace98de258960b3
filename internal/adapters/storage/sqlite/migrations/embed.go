package migrations

import "embed"

// FS contiene las migraciones SQLite del store de eventos.
//
//go:embed *.sql
var FS embed.FS
