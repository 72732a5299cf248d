package proto

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

// Field names used in request and response structs.
const (
	FieldUserName     = "username"
	FieldPassword     = "password"
	FieldConfirm      = "confirm"
	FieldAccessToken  = "access_token"
	FieldOwner        = "owner"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldDueDate      = "due_date"
	FieldAssignedDate = "assigned_date"
	FieldCompleted    = "completed"
	FieldTask         = "task"
	FieldTasks        = "tasks"
	FieldMine         = "mine"
	FieldTaskOverview = "task_overview"
	FieldUserOverview = "user_overview"
	FieldStatus       = "status"
)

// NewStruct is structpb.NewStruct that panics on unsupported values. It is
// only used with maps built from strings, bools and nested maps or lists.
func NewStruct(fields map[string]any) *structpb.Struct {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns a string field or "" when it is absent.
func String(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

// Bool returns a bool field or false when it is absent.
func Bool(s *structpb.Struct, name string) bool {
	return s.GetFields()[name].GetBoolValue()
}

// Has reports whether the field is present.
func Has(s *structpb.Struct, name string) bool {
	_, ok := s.GetFields()[name]
	return ok
}

func taskFields(t models.Task) map[string]any {
	return map[string]any{
		FieldOwner:        t.Owner,
		FieldTitle:        t.Title,
		FieldDescription:  t.Description,
		FieldDueDate:      t.DueDate.Format(common.DateLayout),
		FieldAssignedDate: t.AssignedDate.Format(common.DateLayout),
		FieldCompleted:    t.Completed,
	}
}

// TaskStruct encodes a task.
func TaskStruct(t models.Task) *structpb.Struct {
	return NewStruct(taskFields(t))
}

// TaskFromStruct decodes a task; both dates must be YYYY-MM-DD.
func TaskFromStruct(s *structpb.Struct) (models.Task, error) {
	due, err := time.Parse(common.DateLayout, String(s, FieldDueDate))
	if err != nil {
		return models.Task{}, fmt.Errorf("bad %s: %w", FieldDueDate, err)
	}
	assigned, err := time.Parse(common.DateLayout, String(s, FieldAssignedDate))
	if err != nil {
		return models.Task{}, fmt.Errorf("bad %s: %w", FieldAssignedDate, err)
	}
	return models.Task{
		Owner:        String(s, FieldOwner),
		Title:        String(s, FieldTitle),
		Description:  String(s, FieldDescription),
		DueDate:      due,
		AssignedDate: assigned,
		Completed:    Bool(s, FieldCompleted),
	}, nil
}

// TaskListStruct encodes tasks as {"tasks": [...]}.
func TaskListStruct(tasks []models.Task) *structpb.Struct {
	list := make([]any, 0, len(tasks))
	for _, t := range tasks {
		list = append(list, taskFields(t))
	}
	return NewStruct(map[string]any{FieldTasks: list})
}

// TasksFromStruct decodes {"tasks": [...]}, keeping order.
func TasksFromStruct(s *structpb.Struct) ([]models.Task, error) {
	values := s.GetFields()[FieldTasks].GetListValue().GetValues()
	out := make([]models.Task, 0, len(values))
	for i, v := range values {
		t, err := TaskFromStruct(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}
