package repomanager

import (
	"context"
	"path/filepath"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/filex"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/tasks"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/users"
)

// FileRepositoryManager serves the flat-file stores found in one directory.
type FileRepositoryManager struct {
	dir   string
	users *users.FileRepository
	tasks *tasks.FileRepository
}

func NewFileRepositoryManager(dir string) *FileRepositoryManager {
	if dir == "" {
		dir = "."
	}
	return &FileRepositoryManager{
		dir:   dir,
		users: users.NewFileRepository(filepath.Join(dir, common.UserFileName)),
		tasks: tasks.NewFileRepository(filepath.Join(dir, common.TaskFileName)),
	}
}

// Init creates the data directory and both files when they are missing.
func (m *FileRepositoryManager) Init(ctx context.Context) error {
	if _, err := filex.EnsureDir(m.dir); err != nil {
		return err
	}
	if err := m.users.Ensure(); err != nil {
		return err
	}
	return m.tasks.Ensure()
}

func (m *FileRepositoryManager) Users() users.Repository { return m.users }

func (m *FileRepositoryManager) Tasks() tasks.Repository { return m.tasks }

func (m *FileRepositoryManager) Close() error { return nil }
