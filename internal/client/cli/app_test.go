package cli

import (
	"bufio"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskmanager/internal/client/client"
	"github.com/dmitrijs2005/taskmanager/internal/client/config"
	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/logging"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/reports"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/taskmanager/internal/services"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

var today = timex.Date(2024, 6, 1)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// newLocalApp builds an App over a fresh flat-file store. Input is read as
// plain lines, passwords included.
func newLocalApp(t *testing.T, lines ...string) *App {
	t.Helper()
	stubTerminal(t, false, nil)

	dir := t.TempDir()
	m, err := repomanager.New(context.Background(), repomanager.StorageFile, dir, "")
	require.NoError(t, err)
	clock := timex.FixedClock{Day: today}
	c := client.NewLocalClient(m, reports.NewFileSink(dir), clock)
	t.Cleanup(func() { _ = c.Close() })

	return &App{
		config: &config.Config{},
		client: c,
		logger: logging.Nop{},
		clock:  clock,
		mode:   ModeLocal,
		reader: readerFromLines(lines...),
	}
}

// ------------ commands ------------

func TestApp_LoginLogout(t *testing.T) {
	lines := capturePrint(t)
	a := newLocalApp(t,
		"admin", "wrong",
		"admin", "password",
	)
	ctx := context.Background()

	err := a.Login(ctx)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())

	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())
	assert.True(t, a.isAdmin())
	assert.Equal(t, "(admin local)", a.getStatus())

	require.NoError(t, a.WhoAmI(ctx))
	assert.True(t, contains(*lines, "admin (administrator)"))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(local)", a.getStatus())

	require.NoError(t, a.WhoAmI(ctx))
	assert.True(t, contains(*lines, "Not logged in."))
}

func TestApp_CommandsRequireLogin(t *testing.T) {
	capturePrint(t)
	a := newLocalApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, a.AddTask(ctx), common.ErrUnauthorized)
	assert.ErrorIs(t, a.List(ctx), common.ErrUnauthorized)
	assert.ErrorIs(t, a.Mine(ctx), common.ErrUnauthorized)
	assert.ErrorIs(t, a.Register(ctx), common.ErrUnauthorized)
	assert.ErrorIs(t, a.Report(ctx), common.ErrUnauthorized)
	assert.ErrorIs(t, a.Stats(ctx), common.ErrUnauthorized)
}

func TestApp_AdminSession(t *testing.T) {
	lines := capturePrint(t)
	a := newLocalApp(t,
		"admin", "password",
		// register
		"bob", "pw", "pw",
		// register duplicate
		"bob", "x", "x",
		// addtask with a past date
		"bob", "Old", "late", "2024-05-01",
		// addtask
		"bob", "Write", "docs", "2024-06-10",
	)
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Register(ctx))
	assert.True(t, contains(*lines, "User registered."))
	assert.ErrorIs(t, a.Register(ctx), common.ErrDuplicateUser)

	assert.ErrorIs(t, a.AddTask(ctx), common.ErrPastDueDate)
	require.NoError(t, a.AddTask(ctx))
	assert.True(t, contains(*lines, "Task added successfully."))

	require.NoError(t, a.Stats(ctx))
	assert.True(t, contains(*lines, "Reports not generated yet."))

	*lines = nil
	require.NoError(t, a.Report(ctx))
	assert.True(t, contains(*lines, "Reports generated."))
	assert.True(t, contains(*lines, "Total: 1\nCompleted: 0\nIncomplete: 1\nOverdue: 0"))
	assert.True(t, contains(*lines, "bob - Total: 1, Completed: 0, Incomplete: 1, Overdue: 0"))

	*lines = nil
	require.NoError(t, a.List(ctx))
	assert.True(t, contains(*lines, "Write"))
	assert.True(t, contains(*lines, "2024-06-10"))

	*lines = nil
	require.NoError(t, a.Mine(ctx))
	assert.Equal(t, []string{"No tasks."}, *lines)
}

func TestApp_NonAdminIsRefused(t *testing.T) {
	capturePrint(t)
	a := newLocalApp(t)
	a.userName = "bob"
	ctx := context.Background()

	assert.ErrorIs(t, a.Register(ctx), common.ErrAccessDenied)
	assert.ErrorIs(t, a.Report(ctx), common.ErrAccessDenied)
	assert.ErrorIs(t, a.Stats(ctx), common.ErrAccessDenied)
}

// ------------ rendering ------------

func TestRenderTasks(t *testing.T) {
	out := renderTasks([]models.Task{
		{Owner: "bob", Title: "Late", Description: "d1", DueDate: timex.Date(2024, 5, 1), AssignedDate: timex.Date(2024, 4, 1)},
		{Owner: "amy", Title: "Done", Description: "d2", DueDate: timex.Date(2024, 5, 1), AssignedDate: timex.Date(2024, 4, 1), Completed: true},
	}, today)

	for _, want := range []string{"Assigned to", "Completed", "bob", "Late", "2024-05-01", "2024-04-01", "Yes", "No", "1", "2"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Late"), strings.Index(out, "Done"), "store order is kept")
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Due date must be in the future.", errorMessage(common.ErrPastDueDate))
	assert.Equal(t, "Access denied.", errorMessage(common.ErrAccessDenied))
	assert.Equal(t, "Server unavailable, try again later.", errorMessage(client.ErrUnavailable))
	assert.Equal(t, "Invalid username or password.", errorMessage(assertWrapped(common.ErrInvalidCredentials)))
	assert.Equal(t, "Error: boom", errorMessage(assertWrapped(nil)))
}

type wrapped struct{ err error }

func (w wrapped) Error() string {
	if w.err == nil {
		return "boom"
	}
	return "rpc: " + w.err.Error()
}
func (w wrapped) Unwrap() error { return w.err }

func assertWrapped(err error) error { return wrapped{err: err} }

// ------------ remote behavior ------------

type fakeClient struct {
	client.Client

	mu       sync.Mutex
	pingErr  error
	listErr  error
	loggedIn bool
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeClient) Logout() { f.loggedIn = false }

func (f *fakeClient) ListTasks(ctx context.Context, mine bool) ([]models.Task, error) {
	return nil, f.listErr
}

func (f *fakeClient) AddTask(ctx context.Context, t services.NewTask) (*models.Task, error) {
	return nil, f.listErr
}

func TestApp_SessionLostDropsUser(t *testing.T) {
	capturePrint(t)
	fc := &fakeClient{listErr: common.ErrTokenExpired, loggedIn: true}
	a := &App{client: fc, logger: logging.Nop{}, clock: timex.FixedClock{Day: today}, userName: "bob"}

	assert.ErrorIs(t, a.List(context.Background()), common.ErrTokenExpired)
	assert.False(t, a.isLoggedIn())
	assert.False(t, fc.loggedIn)
}

func TestApp_StatusWatcher(t *testing.T) {
	fc := &fakeClient{}
	a := &App{client: fc, logger: logging.Nop{}, mode: ModeOffline}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)

	fc.mu.Lock()
	fc.pingErr = client.ErrUnavailable
	fc.mu.Unlock()
	require.Eventually(t, func() bool { return a.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
