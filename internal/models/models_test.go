package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func TestUsers_DuplicateLastWinsKeepsPosition(t *testing.T) {
	u := NewUsers(
		User{UserName: "admin", Password: "password"},
		User{UserName: "bob", Password: "one"},
		User{UserName: "carol", Password: "x"},
		User{UserName: "bob", Password: "two"},
	)

	assert.Equal(t, []string{"admin", "bob", "carol"}, u.Names())
	assert.Equal(t, 3, u.Len())

	pw, ok := u.Password("bob")
	assert.True(t, ok)
	assert.Equal(t, "two", pw)

	assert.True(t, u.Has("carol"))
	assert.False(t, u.Has("dave"))
}

func TestUsers_NamesIsACopy(t *testing.T) {
	u := NewUsers(User{UserName: "admin", Password: "password"})
	names := u.Names()
	names[0] = "mallory"
	assert.Equal(t, []string{"admin"}, u.Names())
}

func TestSummarize(t *testing.T) {
	tasks := []Task{
		{Owner: "a", Completed: false, DueDate: day(-1)},
		{Owner: "a", Completed: true, DueDate: day(-1)},
		{Owner: "b", Completed: false, DueDate: day(1)},
	}

	got := Summarize(tasks, today)

	assert.Equal(t, Summary{Total: 3, Completed: 1, Incomplete: 2, Overdue: 1}, got)
}

func TestSummarize_DueTodayIsNotOverdue(t *testing.T) {
	got := Summarize([]Task{{DueDate: today}}, today)
	assert.Equal(t, Summary{Total: 1, Incomplete: 1}, got)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, today))
}

func TestSummarizeByUser(t *testing.T) {
	users := NewUsers(
		User{UserName: "admin", Password: "password"},
		User{UserName: "bob", Password: "pw"},
	)
	tasks := []Task{
		{Owner: "bob", DueDate: day(-3)},
		{Owner: "bob", DueDate: day(3), Completed: true},
		{Owner: "ghost", DueDate: day(-3)},
	}

	got := SummarizeByUser(tasks, users, today)

	want := []UserSummary{
		{UserName: "admin", HasTasks: false},
		{UserName: "bob", HasTasks: true, Summary: Summary{Total: 2, Completed: 1, Incomplete: 1, Overdue: 1}},
	}
	assert.Equal(t, want, got)
}

func TestTasksOf_KeepsOrder(t *testing.T) {
	tasks := []Task{
		{Owner: "bob", Title: "1"},
		{Owner: "amy", Title: "2"},
		{Owner: "bob", Title: "3"},
	}
	got := TasksOf(tasks, "bob")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Title)
	assert.Equal(t, "3", got[1].Title)
	assert.Empty(t, TasksOf(tasks, "nobody"))
}
