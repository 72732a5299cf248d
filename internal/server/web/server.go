// Package web is the HTML front end of the task manager, served with echo.
//
// Login state travels in a signed session cookie and is turned into an
// explicit Session on every request; one-shot messages travel in a flash
// cookie. Pages are rendered from embedded html/template files.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/taskmanager/internal/logging"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

type Server struct {
	address         string
	echo            *echo.Echo
	users           *services.UserService
	tasks           *services.TaskService
	reports         *services.ReportService
	logger          logging.Logger
	secret          []byte
	sessionValidity time.Duration
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService,
	rs *services.ReportService, secretKey string, sessionValidity time.Duration) (*Server, error) {

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		address:         address,
		users:           us,
		tasks:           ts,
		reports:         rs,
		logger:          l.With("module", "web_server"),
		secret:          []byte(secretKey),
		sessionValidity: sessionValidity,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = r
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(s.accessLog)
	e.Use(s.sessionMiddleware)

	s.echo = e
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	e := s.echo

	e.GET("/", s.index)
	e.GET("/login", s.loginForm)
	e.POST("/login", s.login)
	e.GET("/logout", s.logout)
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	e.GET("/dashboard", s.dashboard, requireLogin)
	e.GET("/add_task", s.addTaskForm, requireLogin)
	e.POST("/add_task", s.addTask, requireLogin)
	e.GET("/view_all", s.viewAll, requireLogin)
	e.GET("/view_mine", s.viewMine, requireLogin)

	e.GET("/register", s.registerForm, requireAdmin)
	e.POST("/register", s.register, requireAdmin)
	e.GET("/generate_reports", s.generateReports, requireAdmin)
	e.GET("/stats", s.stats, requireAdmin)
	e.GET("/files/:name", s.downloadReport, requireAdmin)
	e.GET("/reports/export.pdf", s.exportPDF, requireAdmin)
	e.GET("/reports/export.csv", s.exportCSV, requireAdmin)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "web server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting web server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// accessLog logs every request with its request id.
func (s *Server) accessLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()
		s.logger.Info(req.Context(), "request",
			"request_id", res.Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"uri", req.RequestURI,
			"status", res.Status,
			"latency", time.Since(start).String(),
			"user", SessionFrom(c).UserName,
		)
		return nil
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		s.logger.Error(c.Request().Context(), "request failed", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.String(code, msg)
}
