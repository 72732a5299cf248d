package tasks

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskmanager/internal/models"
)

// FileRepository keeps tasks in a text file, one record per line.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

// Ensure creates an empty file if it is missing.
func (r *FileRepository) Ensure() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", r.path, err)
	}
	if err := os.WriteFile(r.path, nil, 0o644); err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) Load(ctx context.Context) ([]models.Task, error) {
	if err := r.Ensure(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	tasks := make([]models.Task, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		if t, ok := ParseLine(scanner.Text()); ok {
			tasks = append(tasks, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return tasks, nil
}

// Save truncates the file and writes every task followed by '\n'.
func (r *FileRepository) Save(ctx context.Context, tasks []models.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(FormatLine(t))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
