// Package users implements the user store: an append-only registry of
// username/password records.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

// Repository loads the full registry and appends single records.
// Implementations never deduplicate: loading resolves duplicates through
// models.Users (last password wins).
type Repository interface {
	// Load returns every user. When the store does not exist yet it is
	// created holding only the bootstrap admin record.
	Load(ctx context.Context) (*models.Users, error)
	Append(ctx context.Context, user models.User) error
}

func bootstrapUser() models.User {
	return models.User{UserName: common.AdminUsername, Password: common.BootstrapPassword}
}
