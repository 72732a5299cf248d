// Package common contains shared constants and sentinel errors used across
// the task manager components.
package common

const (
	// AccessTokenHeaderName is the gRPC metadata key used to carry the
	// access token on outbound requests.
	AccessTokenHeaderName = "access_token"

	// SessionCookieName is the HTTP cookie holding the signed session token.
	SessionCookieName = "tm_session"

	// FlashCookieName is the HTTP cookie holding a one-shot flash message.
	FlashCookieName = "tm_flash"

	// AdminUsername is the reserved account allowed to register users and
	// work with reports.
	AdminUsername = "admin"

	// BootstrapPassword is the password of the admin record written when the
	// user store does not exist yet.
	BootstrapPassword = "password"

	// DateLayout is the on-disk and user-facing calendar date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// Default flat-file and report names.
	UserFileName         = "user.txt"
	TaskFileName         = "tasks.txt"
	TaskOverviewFileName = "task_overview.txt"
	UserOverviewFileName = "user_overview.txt"
)
