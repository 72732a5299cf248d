package tasks

import (
	"testing"

	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
		want   models.Task
	}{
		{
			name:   "valid incomplete",
			line:   "bob;T;D;2026-11-01;2026-10-01;No",
			wantOK: true,
			want:   models.Task{Owner: "bob", Title: "T", Description: "D", DueDate: date(2026, 11, 1), AssignedDate: date(2026, 10, 1)},
		},
		{
			name:   "anything but Yes is incomplete",
			line:   "bob;T;D;2026-11-01;2026-10-01;yes",
			wantOK: true,
			want:   models.Task{Owner: "bob", Title: "T", Description: "D", DueDate: date(2026, 11, 1), AssignedDate: date(2026, 10, 1)},
		},
		{
			name:   "surrounding whitespace trimmed",
			line:   "  bob;T;D;2026-11-01;2026-10-01;Yes \r",
			wantOK: true,
			want:   models.Task{Owner: "bob", Title: "T", Description: "D", DueDate: date(2026, 11, 1), AssignedDate: date(2026, 10, 1), Completed: true},
		},
		{name: "blank", line: "   ", wantOK: false},
		{name: "five fields", line: "bob;T;2026-11-01;2026-10-01;No", wantOK: false},
		{name: "slash date", line: "bob;T;D;2026/11/01;2026-10-01;No", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatLine(t *testing.T) {
	task := models.Task{Owner: "amy", Title: "a", Description: "b", DueDate: date(2027, 1, 2), AssignedDate: date(2026, 12, 31), Completed: true}
	assert.Equal(t, "amy;a;b;2027-01-02;2026-12-31;Yes", FormatLine(task))
	assert.Equal(t, "No", FormatCompleted(false))
}
