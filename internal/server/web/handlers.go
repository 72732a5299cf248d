package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/reports"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

// flashMessages maps domain errors to the text shown to the user.
var flashMessages = map[error]string{
	common.ErrInvalidCredentials: "Invalid username or password.",
	common.ErrUnknownUser:        "Assigned user does not exist.",
	common.ErrInvalidDate:        "Invalid date format. Use YYYY-MM-DD.",
	common.ErrPastDueDate:        "Due date must be in the future.",
	common.ErrDuplicateUser:      "Username already exists.",
	common.ErrPasswordMismatch:   "Passwords do not match.",
}

// flashFor returns the user-facing message for a domain error.
func flashFor(err error) (string, bool) {
	for e, msg := range flashMessages {
		if errors.Is(err, e) {
			return msg, true
		}
	}
	return "", false
}

func form(c echo.Context, name string) string {
	return strings.TrimSpace(c.FormValue(name))
}

func (s *Server) index(c echo.Context) error {
	if SessionFrom(c).LoggedIn() {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Redirect(http.StatusFound, "/login")
}

func (s *Server) loginForm(c echo.Context) error {
	return s.render(c, "login", "Log in", nil)
}

func (s *Server) login(c echo.Context) error {
	ctx := c.Request().Context()
	userName := form(c, "username")

	err := s.users.Login(ctx, userName, form(c, "password"))
	if err != nil {
		msg, ok := flashFor(err)
		if !ok {
			return err
		}
		s.logger.Info(ctx, "login failed", "username", userName)
		addFlash(c, FlashDanger, msg)
		return s.render(c, "login", "Log in", nil)
	}

	if err := s.startSession(c, userName); err != nil {
		return err
	}
	s.logger.Info(ctx, "logged in", "username", userName)
	addFlash(c, FlashSuccess, "Login successful.")
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) logout(c echo.Context) error {
	s.clearSession(c)
	addFlash(c, FlashInfo, "Logged out.")
	return c.Redirect(http.StatusFound, "/login")
}

type dashboardData struct {
	User    string
	Summary models.Summary
	Admin   bool
}

func (s *Server) dashboard(c echo.Context) error {
	sum, err := s.reports.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	session := SessionFrom(c)
	return s.render(c, "dashboard", "Dashboard", dashboardData{
		User:    session.UserName,
		Summary: sum,
		Admin:   session.IsAdmin(),
	})
}

func (s *Server) addTaskForm(c echo.Context) error {
	users, err := s.users.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return s.render(c, "add_task", "Add task", users.Names())
}

func (s *Server) addTask(c echo.Context) error {
	ctx := c.Request().Context()
	task, err := s.tasks.Add(ctx, services.NewTask{
		Owner:       form(c, "assigned_to"),
		Title:       form(c, "title"),
		Description: form(c, "description"),
		DueDate:     form(c, "due_date"),
	})
	if err != nil {
		msg, ok := flashFor(err)
		if !ok {
			return err
		}
		addFlash(c, FlashDanger, msg)
		return c.Redirect(http.StatusFound, "/add_task")
	}

	s.logger.Info(ctx, "task added", "owner", task.Owner, "by", SessionFrom(c).UserName)
	addFlash(c, FlashSuccess, "Task added successfully.")
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) viewAll(c echo.Context) error {
	tasks, err := s.tasks.List(c.Request().Context())
	if err != nil {
		return err
	}
	return s.render(c, "view_all", "All tasks", s.taskRows(tasks))
}

func (s *Server) viewMine(c echo.Context) error {
	tasks, err := s.tasks.ListForUser(c.Request().Context(), SessionFrom(c).UserName)
	if err != nil {
		return err
	}
	return s.render(c, "view_mine", "My tasks", s.taskRows(tasks))
}

func (s *Server) registerForm(c echo.Context) error {
	return s.render(c, "register", "Register user", nil)
}

func (s *Server) register(c echo.Context) error {
	ctx := c.Request().Context()
	userName := form(c, "username")

	err := s.users.RegisterConfirmed(ctx, userName, form(c, "password"), form(c, "confirm"))
	if err != nil {
		msg, ok := flashFor(err)
		if !ok {
			return err
		}
		addFlash(c, FlashDanger, msg)
		return c.Redirect(http.StatusFound, "/register")
	}

	s.logger.Info(ctx, "user registered", "username", userName)
	addFlash(c, FlashSuccess, "User registered.")
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) generateReports(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := s.reports.Generate(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "reports generated")
	addFlash(c, FlashSuccess, "Reports generated.")
	return c.Redirect(http.StatusFound, "/dashboard")
}

type statsData struct {
	TaskText    string
	HasTaskText bool
	UserText    string
	HasUserText bool
}

func (s *Server) stats(c echo.Context) error {
	ctx := c.Request().Context()
	var data statsData

	text, err := s.reports.TaskOverview(ctx)
	switch {
	case err == nil:
		data.TaskText, data.HasTaskText = text, true
	case !errors.Is(err, common.ErrReportNotFound):
		return err
	}

	text, err = s.reports.UserOverview(ctx)
	switch {
	case err == nil:
		data.UserText, data.HasUserText = text, true
	case !errors.Is(err, common.ErrReportNotFound):
		return err
	}

	return s.render(c, "stats", "Statistics", data)
}

func (s *Server) downloadReport(c echo.Context) error {
	name := c.Param("name")
	data, err := s.reports.File(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrReportNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "report not found")
		}
		return err
	}
	return attachment(c, name, "text/plain; charset=utf-8", data)
}

func (s *Server) exportPDF(c echo.Context) error {
	r, err := s.reports.Build(c.Request().Context())
	if err != nil {
		return err
	}
	data, err := reports.RenderPDF(r)
	if err != nil {
		return err
	}
	return attachment(c, "report.pdf", "application/pdf", data)
}

func (s *Server) exportCSV(c echo.Context) error {
	r, err := s.reports.Build(c.Request().Context())
	if err != nil {
		return err
	}
	data, err := reports.RenderCSV(r)
	if err != nil {
		return err
	}
	return attachment(c, "report.csv", "text/csv; charset=utf-8", data)
}

func attachment(c echo.Context, name, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, contentType, data)
}
