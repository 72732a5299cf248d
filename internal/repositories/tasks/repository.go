// Package tasks implements the task store: the whole task list is loaded and
// saved as one unit. There is no locking; a Save replaces whatever was
// stored, so the last writer wins.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskmanager/internal/models"
)

type Repository interface {
	// Load returns every well-formed task in store order. Malformed records
	// are skipped without error.
	Load(ctx context.Context) ([]models.Task, error)
	// Save replaces the stored list with tasks.
	Save(ctx context.Context, tasks []models.Task) error
}
