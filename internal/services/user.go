package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
)

// UserService handles login and registration against the user store.
type UserService struct {
	repomanager repomanager.RepositoryManager
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m}
}

// Users returns the freshly loaded user mapping.
func (s *UserService) Users(ctx context.Context) (*models.Users, error) {
	users, err := s.repomanager.Users().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}
	return users, nil
}

// Login succeeds only when userName is known and password matches exactly.
func (s *UserService) Login(ctx context.Context, userName, password string) error {
	users, err := s.Users(ctx)
	if err != nil {
		return err
	}
	stored, ok := users.Password(userName)
	if !ok || !s.checkPassword(stored, password) {
		return common.ErrInvalidCredentials
	}
	return nil
}

// Register appends a new user unless the name is already taken.
func (s *UserService) Register(ctx context.Context, userName, password string) error {
	users, err := s.Users(ctx)
	if err != nil {
		return err
	}
	if users.Has(userName) {
		return common.ErrDuplicateUser
	}
	return s.append(ctx, userName, password)
}

// RegisterConfirmed is Register with a confirmation field. The duplicate
// check runs before the confirmation check.
func (s *UserService) RegisterConfirmed(ctx context.Context, userName, password, confirm string) error {
	users, err := s.Users(ctx)
	if err != nil {
		return err
	}
	if users.Has(userName) {
		return common.ErrDuplicateUser
	}
	if confirm != password {
		return common.ErrPasswordMismatch
	}
	return s.append(ctx, userName, password)
}

func (s *UserService) append(ctx context.Context, userName, password string) error {
	if err := s.repomanager.Users().Append(ctx, models.User{UserName: userName, Password: password}); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (s *UserService) checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
