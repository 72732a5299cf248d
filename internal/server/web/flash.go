package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskmanager/internal/common"
)

// Flash categories, used as CSS classes by the templates.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

const pendingFlashesKey = "flashes"

// addFlash queues a message. It survives a redirect in a cookie and is also
// visible to a page rendered in the same request.
func addFlash(c echo.Context, category, message string) {
	pending, _ := c.Get(pendingFlashesKey).([]Flash)
	pending = append(pending, Flash{Category: category, Message: message})
	c.Set(pendingFlashesKey, pending)

	all := append(readFlashCookie(c), pending...)
	data, err := json.Marshal(all)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     common.FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns every queued message and clears the cookie.
func popFlashes(c echo.Context) []Flash {
	flashes := readFlashCookie(c)
	if pending, ok := c.Get(pendingFlashesKey).([]Flash); ok {
		flashes = append(flashes, pending...)
		c.Set(pendingFlashesKey, nil)
	}
	if len(flashes) > 0 {
		c.SetCookie(&http.Cookie{
			Name:     common.FlashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return flashes
}

func readFlashCookie(c echo.Context) []Flash {
	cookie, err := c.Cookie(common.FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
