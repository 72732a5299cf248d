package migrations

import (
	"io/fs"
	"testing"

	"github.com/dmitrijs2005/taskmanager/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_EveryDialectHasMigrations(t *testing.T) {
	for _, d := range []dbx.Dialect{dbx.Postgres, dbx.SQLite, dbx.MySQL} {
		sub, err := For(d)
		require.NoError(t, err)

		files, err := fs.Glob(sub, "*.sql")
		require.NoError(t, err)
		assert.NotEmpty(t, files, string(d))
	}
}
