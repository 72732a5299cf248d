package cli

import (
	"errors"

	"github.com/dmitrijs2005/taskmanager/internal/client/client"
	"github.com/dmitrijs2005/taskmanager/internal/common"
)

// messages holds the terminal wording of the domain errors.
var messages = map[error]string{
	common.ErrUnauthorized:       "Please log in first.",
	common.ErrAccessDenied:       "Access denied.",
	common.ErrInvalidCredentials: "Invalid username or password.",
	common.ErrDuplicateUser:      "Username already exists.",
	common.ErrPasswordMismatch:   "Passwords do not match.",
	common.ErrUnknownUser:        "Assigned user does not exist.",
	common.ErrInvalidDate:        "Invalid date format. Use YYYY-MM-DD.",
	common.ErrPastDueDate:        "Due date must be in the future.",
	common.ErrReportNotFound:     "Reports not generated yet.",
	common.ErrInvalidToken:       "Session is not valid, please log in again.",
	common.ErrTokenExpired:       "Session expired, please log in again.",
	client.ErrUnavailable:        "Server unavailable, try again later.",
}

// errorMessage returns the line shown for a failed command.
func errorMessage(err error) string {
	if de, ok := common.DomainError(err); ok {
		err = de
	}
	for e, msg := range messages {
		if errors.Is(err, e) {
			return msg
		}
	}
	return "Error: " + err.Error()
}
