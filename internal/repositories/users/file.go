package users

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

// FileRepository keeps users in a text file, one "username;password" per line.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file name.
func (r *FileRepository) Path() string {
	return r.path
}

// Ensure creates the file with the bootstrap record if it is missing.
func (r *FileRepository) Ensure() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", r.path, err)
	}

	u := bootstrapUser()
	if err := os.WriteFile(r.path, []byte(u.UserName+";"+u.Password), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) Load(ctx context.Context) (*models.Users, error) {
	if err := r.Ensure(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	users := models.NewUsers()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		if u, ok := parseLine(scanner.Text()); ok {
			users.Put(u.UserName, u.Password)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return users, nil
}

// Append writes "\nusername;password". The bootstrap record is written
// without a trailing newline, so each new record starts its own line.
func (r *FileRepository) Append(ctx context.Context, user models.User) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}

	if _, err := f.WriteString("\n" + user.UserName + ";" + user.Password); err != nil {
		_ = f.Close()
		return fmt.Errorf("append %s: %w", r.path, err)
	}
	return f.Close()
}

// parseLine splits on the first ';'. Lines without one are not records.
func parseLine(line string) (models.User, bool) {
	name, password, ok := strings.Cut(strings.TrimSpace(line), ";")
	if !ok {
		return models.User{}, false
	}
	return models.User{UserName: strings.TrimSpace(name), Password: strings.TrimSpace(password)}, true
}
