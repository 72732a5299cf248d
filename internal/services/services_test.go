package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/reports"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/users"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

var today = timex.Date(2024, 6, 1)

// newFileManager returns an initialized flat-file manager in a temp dir.
func newFileManager(t *testing.T) (repomanager.RepositoryManager, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := repomanager.New(context.Background(), repomanager.StorageFile, dir, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, dir
}

// --- fakes for failure paths ---

type fakeUsers struct {
	users     *models.Users
	loadErr   error
	appendErr error
}

func (f *fakeUsers) Load(context.Context) (*models.Users, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.users, nil
}

func (f *fakeUsers) Append(_ context.Context, u models.User) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.users.Put(u.UserName, u.Password)
	return nil
}

type fakeTasks struct {
	list    []models.Task
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeTasks) Load(context.Context) ([]models.Task, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.Task(nil), f.list...), nil
}

func (f *fakeTasks) Save(_ context.Context, list []models.Task) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.list = list
	return nil
}

type fakeManager struct {
	users *fakeUsers
	tasks *fakeTasks
}

func newFakeManager(names ...string) *fakeManager {
	u := models.NewUsers()
	for _, n := range names {
		u.Put(n, "pw")
	}
	return &fakeManager{users: &fakeUsers{users: u}, tasks: &fakeTasks{}}
}

func (m *fakeManager) Init(context.Context) error { return nil }
func (m *fakeManager) Users() users.Repository    { return m.users }
func (m *fakeManager) Tasks() tasks.Repository    { return m.tasks }
func (m *fakeManager) Close() error               { return nil }

type failingSink struct{ err error }

func (s failingSink) Write(context.Context, string, []byte) error { return s.err }
func (s failingSink) Read(context.Context, string) ([]byte, error) {
	return nil, s.err
}

var _ reports.Sink = failingSink{}
