// Package server wires the task manager server: it opens the configured
// storage and report sink, builds the services and runs the web front end
// and the gRPC API side by side until a termination signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskmanager/internal/filex"
	"github.com/dmitrijs2005/taskmanager/internal/logging"
	"github.com/dmitrijs2005/taskmanager/internal/reports"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/taskmanager/internal/server/config"
	"github.com/dmitrijs2005/taskmanager/internal/server/web"
	"github.com/dmitrijs2005/taskmanager/internal/services"
	"github.com/dmitrijs2005/taskmanager/internal/timex"

	gs "github.com/dmitrijs2005/taskmanager/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	repomanager   repomanager.RepositoryManager
	userService   *services.UserService
	taskService   *services.TaskService
	reportService *services.ReportService
}

// newReportSink is swapped in tests.
var newReportSink = func(ctx context.Context, c *config.Config) (reports.Sink, error) {
	switch c.ReportSink {
	case "", config.ReportSinkFile:
		dir, err := filex.EnsureDir(c.ReportDirectory())
		if err != nil {
			return nil, err
		}
		return reports.NewFileSink(dir), nil
	case config.ReportSinkS3:
		s3c := reports.S3Config{
			Region:       c.S3Region,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
			Prefix:       c.S3Prefix,
			Archive:      c.S3Archive,
		}
		client, err := reports.NewS3Client(ctx, s3c)
		if err != nil {
			return nil, err
		}
		return reports.NewS3Sink(client, s3c), nil
	default:
		return nil, fmt.Errorf("unknown report sink %q", c.ReportSink)
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := repomanager.New(ctx, c.Storage, c.DataDir, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	sink, err := newReportSink(ctx, c)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("report sink init error: %w", err)
	}

	clock := timex.SystemClock{}

	return &App{
		config:        c,
		logger:        logger,
		repomanager:   rm,
		userService:   services.NewUserService(rm),
		taskService:   services.NewTaskService(rm, clock),
		reportService: services.NewReportService(rm, sink, clock),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.userService, app.taskService,
		app.reportService, app.config.SecretKey, app.config.SessionValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startWebServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := web.NewServer(app.config.HTTPAddr, app.logger, app.userService, app.taskService,
		app.reportService, app.config.SecretKey, app.config.SessionValidityDuration)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts both servers and blocks until ctx is cancelled, a signal is
// received or one of the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage, "report_sink", app.config.ReportSink)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startWebServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
