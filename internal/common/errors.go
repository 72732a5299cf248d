package common

import "errors"

// Callers should use errors.Is to match these values; infrastructure errors
// are wrapped around them with %w.
var (
	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrAccessDenied = errors.New("access denied")

	// Login / registration.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Task creation.
	ErrUnknownUser = errors.New("assigned user does not exist")
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDueDate = errors.New("due date must be in the future")

	// Reporting.
	ErrReportNotFound = errors.New("no report found, generate it first")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// domainErrors lists the errors whose message is safe to show to an end user
// and which survive a round trip through a transport by message.
var domainErrors = []error{
	ErrUnauthorized,
	ErrAccessDenied,
	ErrInvalidCredentials,
	ErrDuplicateUser,
	ErrPasswordMismatch,
	ErrUnknownUser,
	ErrInvalidDate,
	ErrPastDueDate,
	ErrReportNotFound,
	ErrInvalidToken,
	ErrTokenExpired,
}

// DomainError returns the sentinel matching err (directly or by message) and
// true, or nil and false when err is not a known domain error.
func DomainError(err error) (error, bool) {
	if err == nil {
		return nil, false
	}
	for _, e := range domainErrors {
		if errors.Is(err, e) || err.Error() == e.Error() {
			return e, true
		}
	}
	return nil, false
}
