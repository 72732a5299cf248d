package users

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.txt")
	return NewFileRepository(path), path
}

func TestFileRepository_Load_AbsentCreatesBootstrap(t *testing.T) {
	repo, path := newFileRepo(t)

	users, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"admin"}, users.Names())
	pw, ok := users.Password("admin")
	require.True(t, ok)
	assert.Equal(t, "password", pw)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "admin;password", string(raw))
}

func TestFileRepository_Append_FileFormat(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, models.User{UserName: "bob", Password: "secret"}))
	require.NoError(t, repo.Append(ctx, models.User{UserName: "carol", Password: "pw"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "admin;password\nbob;secret\ncarol;pw", string(raw))

	users, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "bob", "carol"}, users.Names())
}

func TestFileRepository_Load_Parsing(t *testing.T) {
	repo, path := newFileRepo(t)
	content := "admin;password\n" +
		"\n" +
		"no separator here\n" +
		"  bob ; pw1 \r\n" +
		"eve;pa;ss\n" +
		"bob;pw2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	users, err := repo.Load(context.Background())
	require.NoError(t, err)

	// duplicate usernames: last one wins, first position kept
	assert.Equal(t, []string{"admin", "bob", "eve"}, users.Names())
	pw, _ := users.Password("bob")
	assert.Equal(t, "pw2", pw)

	// split happens on the first separator only
	pw, _ = users.Password("eve")
	assert.Equal(t, "pa;ss", pw)
}

func TestFileRepository_Load_ExistingFileUntouched(t *testing.T) {
	repo, path := newFileRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("root;toor"), 0o644))

	users, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, users.Names())
	assert.False(t, users.Has("admin"))
}

func TestFileRepository_Load_UnreadableDir(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing", "user.txt"))
	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   models.User
		wantOK bool
	}{
		{line: "a;b", want: models.User{UserName: "a", Password: "b"}, wantOK: true},
		{line: "a;", want: models.User{UserName: "a", Password: ""}, wantOK: true},
		{line: "ab", wantOK: false},
		{line: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := parseLine(tt.line)
		assert.Equal(t, tt.wantOK, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestFileRepository_Load_LongLine(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	long := strings.Repeat("p", 100*1024)
	_, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, models.User{UserName: "bob", Password: long}))
	require.NoError(t, repo.Append(ctx, models.User{UserName: "carol", Password: "pw"}))

	users, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "bob", "carol"}, users.Names())
	pw, ok := users.Password("bob")
	require.True(t, ok)
	assert.Equal(t, long, pw)
}
