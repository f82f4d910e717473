package services

import (
	"context"
	"fmt"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/infrastructure/logger"
	"github.com/todoboard/core/internal/ports"
)

// UserService handles user management operations
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser creates an account. Login and email uniqueness is enforced by
// the store; a violation propagates as a storage error.
func (s *UserService) CreateUser(ctx context.Context, req ports.CreateUserRequest) (*entities.User, error) {
	user := &entities.User{
		Login:    req.Login,
		Password: HashPassword(req.Password),
		Name:     req.Name,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User created", "login", user.Login, "user_id", user.ID)
	return user, nil
}

// GetByLogin looks up an account by its login name.
func (s *UserService) GetByLogin(ctx context.Context, login string) (*entities.User, error) {
	return s.userRepo.GetByLogin(ctx, login)
}
