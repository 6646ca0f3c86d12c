// Package migrations embeds the goose schema files applied by db.Migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
