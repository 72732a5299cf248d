package models

import "time"

// Summary aggregates a list of tasks.
type Summary struct {
	Total      int
	Completed  int
	Incomplete int
	Overdue    int
}

// UserSummary is one line of the per-user overview. When HasTasks is false
// the user owns nothing and Summary is meaningless: the report prints the
// no-tasks marker instead of zeroed counts.
type UserSummary struct {
	UserName string
	HasTasks bool
	Summary  Summary
}

// Summarize counts tasks; overdue means incomplete with a due date before today.
func Summarize(tasks []Task, today time.Time) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		if t.Overdue(today) {
			s.Overdue++
		}
	}
	s.Incomplete = s.Total - s.Completed
	return s
}

// SummarizeByUser produces one entry per known user, in user store order.
// Tasks owned by names absent from users are not reported.
func SummarizeByUser(tasks []Task, users *Users, today time.Time) []UserSummary {
	names := users.Names()
	out := make([]UserSummary, 0, len(names))
	for _, name := range names {
		owned := TasksOf(tasks, name)
		if len(owned) == 0 {
			out = append(out, UserSummary{UserName: name})
			continue
		}
		out = append(out, UserSummary{UserName: name, HasTasks: true, Summary: Summarize(owned, today)})
	}
	return out
}
