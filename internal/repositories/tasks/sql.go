package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/dbx"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

// SQLRepository stores tasks in the "tasks" table. Order is kept in the
// position column; dates are stored as YYYY-MM-DD text like the file store.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// Load skips rows whose dates do not parse, mirroring the file store.
func (r *SQLRepository) Load(ctx context.Context) ([]models.Task, error) {
	query := `SELECT owner, title, description, due_date, assigned_date, completed
		FROM tasks ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var (
			t             models.Task
			due, assigned string
		)
		if err := rows.Scan(&t.Owner, &t.Title, &t.Description, &due, &assigned, &t.Completed); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if t.DueDate, err = time.Parse(common.DateLayout, due); err != nil {
			continue
		}
		if t.AssignedDate, err = time.Parse(common.DateLayout, assigned); err != nil {
			continue
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tasks, nil
}

// Save deletes every row and inserts tasks again in one transaction.
func (r *SQLRepository) Save(ctx context.Context, tasks []models.Task) error {
	insert := r.dialect.Rebind(`INSERT INTO tasks
		(position, owner, title, description, due_date, assigned_date, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		for i, t := range tasks {
			_, err := tx.ExecContext(ctx, insert,
				i, t.Owner, t.Title, t.Description,
				t.DueDate.Format(common.DateLayout), t.AssignedDate.Format(common.DateLayout),
				t.Completed)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
		return nil
	})
}
