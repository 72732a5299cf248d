package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/taskmanager/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
// On success the username becomes the session user.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, userName, password); err != nil {
		a.logger.Debug(ctx, "login failed", "username", userName, "error", err)
		return err
	}

	a.userName = userName
	printlnFn("Login successful.")
	return nil
}

// Logout forgets the session user and its token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	if a.isAdmin() {
		printlnFn(a.userName, "(administrator)")
		return nil
	}
	printlnFn(a.userName)
	return nil
}

// Register asks for a username and the password twice and creates the
// user. Only the administrator may do this.
func (a *App) Register(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter new username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, userName, password, confirm); err != nil {
		return err
	}

	printlnFn("User registered.")
	return nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return common.ErrUnauthorized
	}
	return nil
}

func (a *App) requireAdmin() error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if !a.isAdmin() {
		return common.ErrAccessDenied
	}
	return nil
}

// checkSession drops the session user when the backend no longer accepts
// the session, then returns err unchanged.
func (a *App) checkSession(err error) error {
	if errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrUnauthorized) {
		a.client.Logout()
		a.userName = ""
	}
	return err
}
