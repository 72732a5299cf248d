package tasks

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

const fieldCount = 6

// ParseLine decodes "owner;title;description;due;assigned;completed".
// It returns false for blank lines, a wrong field count or a bad date.
func ParseLine(line string) (models.Task, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return models.Task{}, false
	}

	parts := strings.Split(line, ";")
	if len(parts) != fieldCount {
		return models.Task{}, false
	}

	due, err := time.Parse(common.DateLayout, parts[3])
	if err != nil {
		return models.Task{}, false
	}
	assigned, err := time.Parse(common.DateLayout, parts[4])
	if err != nil {
		return models.Task{}, false
	}

	return models.Task{
		Owner:        parts[0],
		Title:        parts[1],
		Description:  parts[2],
		DueDate:      due,
		AssignedDate: assigned,
		Completed:    parts[5] == "Yes",
	}, true
}

// FormatLine encodes t without the trailing newline.
func FormatLine(t models.Task) string {
	return strings.Join([]string{
		t.Owner,
		t.Title,
		t.Description,
		t.DueDate.Format(common.DateLayout),
		t.AssignedDate.Format(common.DateLayout),
		FormatCompleted(t.Completed),
	}, ";")
}

// FormatCompleted renders the completion flag the way the store does.
func FormatCompleted(completed bool) string {
	if completed {
		return "Yes"
	}
	return "No"
}
