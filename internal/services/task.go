package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

// TaskService creates and lists tasks.
type TaskService struct {
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
}

func NewTaskService(m repomanager.RepositoryManager, clock timex.Clock) *TaskService {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &TaskService{repomanager: m, clock: clock}
}

// NewTask carries the caller supplied fields of a task. DueDate is the raw
// YYYY-MM-DD string as entered.
type NewTask struct {
	Owner       string
	Title       string
	Description string
	DueDate     string
}

// Add validates t and appends it to the task list.
//
// Checks run in this order: the owner must be a known user, the due date
// must parse as YYYY-MM-DD, and it must lie strictly after today. The task
// is assigned today and starts incomplete.
//
// Text fields are stored as given. A title or description holding ';' or a
// line break is saved but does not survive the next load of a flat-file
// store, which skips lines that do not split into six fields.
func (s *TaskService) Add(ctx context.Context, t NewTask) (*models.Task, error) {
	users, err := s.repomanager.Users().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}
	if !users.Has(t.Owner) {
		return nil, common.ErrUnknownUser
	}

	due, err := time.Parse(common.DateLayout, t.DueDate)
	if err != nil {
		return nil, common.ErrInvalidDate
	}

	today := s.clock.Today()
	if !due.After(today) {
		return nil, common.ErrPastDueDate
	}

	repo := s.repomanager.Tasks()
	list, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading tasks: %w", err)
	}

	task := models.Task{
		Owner:        t.Owner,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      due,
		AssignedDate: today,
		Completed:    false,
	}
	list = append(list, task)

	if err := repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("error saving tasks: %w", err)
	}
	return &task, nil
}

// List returns every task in store order.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	list, err := s.repomanager.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading tasks: %w", err)
	}
	return list, nil
}

// ListForUser returns the tasks owned by userName in store order.
func (s *TaskService) ListForUser(ctx context.Context, userName string) ([]models.Task, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.TasksOf(list, userName), nil
}

// Today exposes the service clock so presenters can mark overdue tasks.
func (s *TaskService) Today() time.Time {
	return s.clock.Today()
}
