package cli

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	taskstore "github.com/dmitrijs2005/taskmanager/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	overdueStyle = cellStyle.Foreground(lipgloss.Color("9"))
)

// AddTask prompts for the task fields and assigns the task. Validation
// happens in the backend.
func (a *App) AddTask(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	owner, err := getSimpleText(a.reader, "Assign to (username)", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	due, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.client.AddTask(ctx, services.NewTask{
		Owner:       owner,
		Title:       title,
		Description: description,
		DueDate:     due,
	})
	if err != nil {
		return a.checkSession(err)
	}

	a.logger.Debug(ctx, "task added", "owner", task.Owner, "due", task.DueDate.Format(common.DateLayout))
	printlnFn("Task added successfully.")
	return nil
}

// List prints every task.
func (a *App) List(ctx context.Context) error {
	return a.listTasks(ctx, false)
}

// Mine prints the tasks assigned to the session user.
func (a *App) Mine(ctx context.Context) error {
	return a.listTasks(ctx, true)
}

func (a *App) listTasks(ctx context.Context, mine bool) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	tasks, err := a.client.ListTasks(ctx, mine)
	if err != nil {
		return a.checkSession(err)
	}

	if len(tasks) == 0 {
		printlnFn("No tasks.")
		return nil
	}
	printlnFn(renderTasks(tasks, a.clock.Today()))
	return nil
}

// renderTasks lays tasks out as a table; overdue rows are highlighted.
func renderTasks(tasks []models.Task, today time.Time) string {
	overdue := make([]bool, len(tasks))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Assigned to", "Title", "Description", "Due", "Assigned", "Completed")

	for i, task := range tasks {
		overdue[i] = task.Overdue(today)
		t.Row(
			strconv.Itoa(i+1),
			task.Owner,
			task.Title,
			task.Description,
			task.DueDate.Format(common.DateLayout),
			task.AssignedDate.Format(common.DateLayout),
			taskstore.FormatCompleted(task.Completed),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row >= 0 && row < len(overdue) && overdue[row]:
			return overdueStyle
		default:
			return cellStyle
		}
	})

	return t.String()
}
