package models

import "time"

// Task is one record of the task store. It has no identity beyond its
// position in the store.
//
// DueDate and AssignedDate are calendar dates at midnight UTC.
type Task struct {
	Owner        string
	Title        string
	Description  string
	DueDate      time.Time
	AssignedDate time.Time
	Completed    bool
}

// Overdue reports whether the task is incomplete and its due date lies
// strictly before today.
func (t Task) Overdue(today time.Time) bool {
	return !t.Completed && t.DueDate.Before(today)
}

// TasksOf returns the tasks owned by userName, keeping store order.
func TasksOf(tasks []Task, userName string) []Task {
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.Owner == userName {
			out = append(out, t)
		}
	}
	return out
}
