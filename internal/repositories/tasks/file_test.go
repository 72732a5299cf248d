package tasks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleTasks() []models.Task {
	return []models.Task{
		{
			Owner: "admin", Title: "Write report", Description: "quarterly numbers",
			DueDate: date(2026, 11, 1), AssignedDate: date(2026, 10, 1), Completed: false,
		},
		{
			Owner: "bob", Title: "Fix printer", Description: "",
			DueDate: date(2026, 10, 20), AssignedDate: date(2026, 10, 2), Completed: true,
		},
	}
}

func newFileRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	return NewFileRepository(path), path
}

func TestFileRepository_Load_AbsentCreatesEmptyFile(t *testing.T) {
	repo, path := newFileRepo(t)

	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestFileRepository_Save_Format(t *testing.T) {
	repo, path := newFileRepo(t)

	require.NoError(t, repo.Save(context.Background(), sampleTasks()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "admin;Write report;quarterly numbers;2026-11-01;2026-10-01;No\n" +
		"bob;Fix printer;;2026-10-20;2026-10-02;Yes\n"
	assert.Equal(t, want, string(raw))
}

func TestFileRepository_RoundTrip(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleTasks()))
	first, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(sampleTasks(), first))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// save(load()) is idempotent
	require.NoError(t, repo.Save(ctx, first))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	second, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
}

func TestFileRepository_Load_SkipsMalformedLines(t *testing.T) {
	repo, path := newFileRepo(t)
	content := "admin;First;d;2026-11-01;2026-10-01;No\n" +
		"too;few;fields\n" +
		"\n" +
		"bob;Bad date;d;2026-13-45;2026-10-01;No\n" +
		"bob;Bad assigned;d;2026-11-01;yesterday;No\n" +
		"bob;Extra;d;2026-11-01;2026-10-01;No;surplus\n" +
		"carol;Last;d;2026-12-24;2026-10-03;Yes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, "Last", tasks[1].Title)
	assert.True(t, tasks[1].Completed)
}

func TestFileRepository_Save_ReplacesContent(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleTasks()))
	require.NoError(t, repo.Save(ctx, sampleTasks()[:1]))

	tasks, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestFileRepository_Save_Error(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope", "tasks.txt"))
	require.Error(t, repo.Save(context.Background(), sampleTasks()))
}

func TestFileRepository_Load_LongLine(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	long := sampleTasks()
	long[0].Description = strings.Repeat("x", 200*1024)
	require.NoError(t, repo.Save(ctx, long))

	tasks, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Len(t, tasks[0].Description, 200*1024)
	assert.Equal(t, "Fix printer", tasks[1].Title)
}
