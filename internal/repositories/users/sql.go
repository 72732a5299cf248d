package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskmanager/internal/dbx"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

// SQLRepository stores users in the "users" table. The table has no unique
// constraint on username so it behaves like the append-only file.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// Load seeds the bootstrap admin into an empty table, then returns every
// row in insertion order.
func (r *SQLRepository) Load(ctx context.Context) (*models.Users, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		if err := r.Append(ctx, bootstrapUser()); err != nil {
			return nil, err
		}
	}

	rows, err := r.db.QueryContext(ctx, `SELECT username, password FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := models.NewUsers()
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserName, &u.Password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users.Put(u.UserName, u.Password)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func (r *SQLRepository) Append(ctx context.Context, user models.User) error {
	query := r.dialect.Rebind(`INSERT INTO users (username, password) VALUES (?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, user.UserName, user.Password); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
