package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"login", "dashboard", "add_task", "view_all", "view_mine", "register", "stats"}

// renderer renders a page template inside the shared layout.
type renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(common.DateLayout)
	},
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}

func newRenderer() (*renderer, error) {
	r := &renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New(p).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+p+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", p, err)
		}
		r.pages[p] = t
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// page is the data every template receives.
type page struct {
	Title   string
	Session Session
	Flashes []Flash
	Data    any
}

// taskRow is a task prepared for display.
type taskRow struct {
	models.Task
	IsOverdue bool
}

func (s *Server) taskRows(tasks []models.Task) []taskRow {
	today := s.tasks.Today()
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow{Task: t, IsOverdue: t.Overdue(today)})
	}
	return rows
}

func (s *Server) render(c echo.Context, name, title string, data any) error {
	return s.renderStatus(c, http.StatusOK, name, title, data)
}

func (s *Server) renderStatus(c echo.Context, code int, name, title string, data any) error {
	return c.Render(code, name, page{
		Title:   title,
		Session: SessionFrom(c),
		Flashes: popFlashes(c),
		Data:    data,
	})
}
