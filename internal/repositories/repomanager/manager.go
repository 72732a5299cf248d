// Package repomanager selects the storage backend and vends the user and
// task repositories bound to it. Call sites only see the Repository
// interfaces, so flat files and SQL databases are interchangeable.
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskmanager/internal/dbx"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/users"
)

// StorageFile is the default backend: user.txt and tasks.txt in a directory.
const StorageFile = "file"

type RepositoryManager interface {
	// Init prepares the backend: creates missing files or runs migrations.
	Init(ctx context.Context) error
	Users() users.Repository
	Tasks() tasks.Repository
	Close() error
}

// New builds the manager named by storage ("file", "postgres", "sqlite" or
// "mysql") and initializes it. dataDir is used by the file backend, dsn by
// the SQL ones.
func New(ctx context.Context, storage, dataDir, dsn string) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	if storage == "" || strings.EqualFold(storage, StorageFile) {
		m = NewFileRepositoryManager(dataDir)
	} else {
		dialect, perr := dbx.ParseDialect(storage)
		if perr != nil {
			return nil, perr
		}
		m, err = NewSQLRepositoryManager(dialect, dsn)
		if err != nil {
			return nil, err
		}
	}

	if err := m.Init(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	return m, nil
}
