package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskmanager/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectQuery = `(?s)^SELECT\s+owner,\s*title,\s*description,\s*due_date,\s*assigned_date,\s*completed\s+FROM\s+tasks\s+ORDER\s+BY\s+position$`
	deleteQuery = `^DELETE\s+FROM\s+tasks$`
	insertQuery = `(?s)^INSERT\s+INTO\s+tasks.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)$`
)

func newSQLRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db, dbx.Postgres), mock, db
}

func TestSQLRepository_Load(t *testing.T) {
	repo, mock, _ := newSQLRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"owner", "title", "description", "due_date", "assigned_date", "completed"}).
		AddRow("admin", "Write report", "quarterly numbers", "2026-11-01", "2026-10-01", false).
		AddRow("ghost", "Broken", "", "not-a-date", "2026-10-01", false).
		AddRow("bob", "Fix printer", "", "2026-10-20", "2026-10-02", true)
	mock.ExpectQuery(selectQuery).WillReturnRows(rows)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_Load_DBError(t *testing.T) {
	repo, mock, _ := newSQLRepoWithMock(t)

	mock.ExpectQuery(selectQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestSQLRepository_Save_ReplacesAllRows(t *testing.T) {
	repo, mock, _ := newSQLRepoWithMock(t)
	tasks := sampleTasks()

	mock.ExpectBegin()
	mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(insertQuery).
		WithArgs(0, "admin", "Write report", "quarterly numbers", "2026-11-01", "2026-10-01", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertQuery).
		WithArgs(1, "bob", "Fix printer", "", "2026-10-20", "2026-10-02", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), tasks))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_Save_RollsBackOnInsertError(t *testing.T) {
	repo, mock, _ := newSQLRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertQuery).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), sampleTasks())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
