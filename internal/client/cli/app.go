package cli

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/client/client"
	"github.com/dmitrijs2005/taskmanager/internal/client/config"
	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/logging"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	client   client.Client
	logger   logging.Logger
	clock    timex.Clock
	userName string
	reader   *bufio.Reader

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the backend selected by c: the gRPC API when an endpoint is
// configured, the local store otherwise.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewConsoleLogger(os.Stderr, c.LogLevel)

	var (
		backend client.Client
		mode    Mode
		err     error
	)
	if c.Remote() {
		backend, err = client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
		mode = ModeOffline
	} else {
		backend, err = client.OpenLocal(ctx, c.Storage, c.DataDir, c.DatabaseDSN, c.ReportDirectory())
		mode = ModeLocal
	}
	if err != nil {
		logger.Error(ctx, "error initializing client", "error", err)
		return nil, err
	}

	return &App{
		config: c,
		client: backend,
		logger: logger,
		clock:  timex.SystemClock{},
		mode:   mode,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "Switched mode", "mode", string(mode))
	}
}

// Mode returns the current connectivity mode.
func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Run starts the status watcher in remote mode and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	if a.config.Remote() {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) isAdmin() bool {
	return a.userName == common.AdminUsername
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
