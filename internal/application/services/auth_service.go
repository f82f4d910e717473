package services

import (
	"context"
	"errors"
	"time"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/infrastructure/logger"
	"github.com/todoboard/core/internal/ports"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo ports.UserRepository, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate validates the submitted credentials against the store with a
// single combined (login, password hash) lookup. A wrong password and an
// unknown login are indistinguishable by construction: both surface as
// entities.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*entities.SessionSeed, error) {
	user, err := s.userRepo.GetByCredentials(ctx, login, HashPassword(password))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			s.logger.Warn("Rejected login attempt", "login", login)
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}

	s.logger.Info("User logged in", "login", user.Login, "user_id", user.ID)

	now := time.Now()
	return &entities.SessionSeed{
		Login:      user.Login,
		IsAdmin:    user.IsAdmin,
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		LoginTime:  now,
		LastActive: now,
	}, nil
}
