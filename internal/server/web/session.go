package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/server/auth"
)

// Session is the per-request login state, decoded from the session cookie.
// The zero value is an anonymous visitor.
type Session struct {
	UserName string
}

func (s Session) LoggedIn() bool {
	return s.UserName != ""
}

func (s Session) IsAdmin() bool {
	return s.UserName == common.AdminUsername
}

const sessionKey = "session"

// SessionFrom returns the session attached by the session middleware.
func SessionFrom(c echo.Context) Session {
	if s, ok := c.Get(sessionKey).(Session); ok {
		return s
	}
	return Session{}
}

// sessionMiddleware decodes the session cookie into a Session. Invalid or
// expired cookies are cleared and the request continues anonymously.
func (s *Server) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := Session{}
		if cookie, err := c.Cookie(common.SessionCookieName); err == nil && cookie.Value != "" {
			userName, err := auth.GetUserFromToken(cookie.Value, s.secret)
			if err != nil {
				s.logger.Debug(c.Request().Context(), "dropping session cookie", "error", err)
				s.clearSession(c)
			} else {
				session.UserName = userName
			}
		}
		c.Set(sessionKey, session)
		return next(c)
	}
}

func (s *Server) startSession(c echo.Context, userName string) error {
	token, err := auth.GenerateToken(userName, s.secret, s.sessionValidity)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionValidity),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionKey, Session{UserName: userName})
	return nil
}

func (s *Server) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionKey, Session{})
}

// requireLogin sends anonymous visitors to the login page.
func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !SessionFrom(c).LoggedIn() {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// requireAdmin refuses everybody but the admin user.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !SessionFrom(c).IsAdmin() {
			addFlash(c, FlashDanger, "Access denied.")
			return c.Redirect(http.StatusFound, "/dashboard")
		}
		return next(c)
	}
}
