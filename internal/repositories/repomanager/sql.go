package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/taskmanager/internal/dbx"
	"github.com/dmitrijs2005/taskmanager/internal/migrations"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/users"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager serves repositories backed by one *sql.DB.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect dbx.Dialect
}

// sqlOpen and gooseUp are seams for tests.
var (
	sqlOpen = sql.Open

	gooseUp = func(ctx context.Context, db *sql.DB, fsys fs.FS, dialect string) error {
		goose.SetBaseFS(fsys)
		if err := goose.SetDialect(dialect); err != nil {
			return err
		}
		return goose.UpContext(ctx, db, ".")
	}
)

func NewSQLRepositoryManager(dialect dbx.Dialect, dsn string) (*SQLRepositoryManager, error) {
	db, err := sqlOpen(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if dialect == dbx.SQLite {
		// one writer at a time; also keeps in-memory databases on one connection
		db.SetMaxOpenConns(1)
	}
	return &SQLRepositoryManager{db: db, dialect: dialect}, nil
}

// Init runs the embedded goose migrations of the dialect.
func (m *SQLRepositoryManager) Init(ctx context.Context) error {
	fsys, err := migrations.For(m.dialect)
	if err != nil {
		return err
	}
	if err := gooseUp(ctx, m.db, fsys, m.dialect.GooseDialect()); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}
	return nil
}

func (m *SQLRepositoryManager) Users() users.Repository {
	return users.NewSQLRepository(m.db, m.dialect)
}

func (m *SQLRepositoryManager) Tasks() tasks.Repository {
	return tasks.NewSQLRepository(m.db, m.dialect)
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
