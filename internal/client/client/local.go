package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/filex"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/reports"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/taskmanager/internal/services"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

// LocalClient runs the services in process, on the same store the server
// would use. Access rules match the gRPC API.
type LocalClient struct {
	repomanager repomanager.RepositoryManager
	users       *services.UserService
	tasks       *services.TaskService
	reports     *services.ReportService
	userName    string
}

func NewLocalClient(m repomanager.RepositoryManager, sink reports.Sink, clock timex.Clock) *LocalClient {
	return &LocalClient{
		repomanager: m,
		users:       services.NewUserService(m),
		tasks:       services.NewTaskService(m, clock),
		reports:     services.NewReportService(m, sink, clock),
	}
}

// OpenLocal opens the store and the report directory and returns a client
// over them. The store files are created when missing.
func OpenLocal(ctx context.Context, storage, dataDir, dsn, reportDir string) (*LocalClient, error) {
	dir, err := filex.EnsureDir(reportDir)
	if err != nil {
		return nil, err
	}
	m, err := repomanager.New(ctx, storage, dataDir, dsn)
	if err != nil {
		return nil, err
	}
	return NewLocalClient(m, reports.NewFileSink(dir), nil), nil
}

func (c *LocalClient) requireUser() error {
	if c.userName == "" {
		return common.ErrUnauthorized
	}
	return nil
}

func (c *LocalClient) requireAdmin() error {
	if err := c.requireUser(); err != nil {
		return err
	}
	if c.userName != common.AdminUsername {
		return common.ErrAccessDenied
	}
	return nil
}

func (c *LocalClient) Login(ctx context.Context, userName, password string) error {
	if err := c.users.Login(ctx, userName, password); err != nil {
		return err
	}
	c.userName = userName
	return nil
}

func (c *LocalClient) Logout() {
	c.userName = ""
}

func (c *LocalClient) Register(ctx context.Context, userName, password, confirm string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	return c.users.RegisterConfirmed(ctx, userName, password, confirm)
}

func (c *LocalClient) AddTask(ctx context.Context, t services.NewTask) (*models.Task, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	return c.tasks.Add(ctx, t)
}

func (c *LocalClient) ListTasks(ctx context.Context, mine bool) ([]models.Task, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if mine {
		return c.tasks.ListForUser(ctx, c.userName)
	}
	return c.tasks.List(ctx)
}

func (c *LocalClient) GenerateReports(ctx context.Context) (*Reports, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}
	r, err := c.reports.Generate(ctx)
	if err != nil {
		return nil, err
	}
	files := r.Files()
	return &Reports{
		TaskOverview: string(files[common.TaskOverviewFileName]),
		UserOverview: string(files[common.UserOverviewFileName]),
	}, nil
}

func (c *LocalClient) GetReports(ctx context.Context) (*Reports, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	out := &Reports{}
	var err error
	if out.TaskOverview, err = c.reports.TaskOverview(ctx); err != nil && !errors.Is(err, common.ErrReportNotFound) {
		return nil, err
	}
	if out.UserOverview, err = c.reports.UserOverview(ctx); err != nil && !errors.Is(err, common.ErrReportNotFound) {
		return nil, err
	}
	return out, nil
}

// Ping always succeeds: the store is opened on demand by every call.
func (c *LocalClient) Ping(ctx context.Context) error {
	return nil
}

func (c *LocalClient) Close() error {
	return c.repomanager.Close()
}
