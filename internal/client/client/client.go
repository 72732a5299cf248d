package client

import (
	"context"

	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

// Reports holds the persisted overview texts. An empty field means the
// report was never generated.
type Reports struct {
	TaskOverview string
	UserOverview string
}

// Client is what the REPL needs from a backend. Every call except Login and
// Ping acts as the logged-in user.
type Client interface {
	Close() error
	Login(ctx context.Context, userName, password string) error
	Logout()
	Register(ctx context.Context, userName, password, confirm string) error
	AddTask(ctx context.Context, t services.NewTask) (*models.Task, error)
	ListTasks(ctx context.Context, mine bool) ([]models.Task, error)
	GenerateReports(ctx context.Context) (*Reports, error)
	GetReports(ctx context.Context) (*Reports, error)
	Ping(ctx context.Context) error
}
