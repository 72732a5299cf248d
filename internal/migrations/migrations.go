// Package migrations embeds the goose migrations of every SQL storage backend.
// Each dialect lives in its own directory because DDL differs between them.
package migrations

import (
	"embed"
	"io/fs"

	"github.com/dmitrijs2005/taskmanager/internal/dbx"
)

//go:embed postgres/*.sql sqlite/*.sql mysql/*.sql
var Migrations embed.FS

// For returns the migration directory of dialect d as the root of an fs.FS.
func For(d dbx.Dialect) (fs.FS, error) {
	return fs.Sub(Migrations, string(d))
}
