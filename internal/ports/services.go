package ports

import (
	"context"

	"github.com/todoboard/core/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	// Authenticate validates the submitted credentials with a single
	// combined lookup and returns the values to seed a new session with.
	Authenticate(ctx context.Context, login, password string) (*entities.SessionSeed, error)
}

// TodoService interface for todo read operations
type TodoService interface {
	// LoadUserTodos returns the user's todos as fully detached views:
	// every tag name resolved, nothing left to lazily fetch.
	LoadUserTodos(ctx context.Context, userID int64) ([]entities.TodoView, error)
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*entities.Todo, error)
}

// UserService interface for user management operations
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*entities.User, error)
	GetByLogin(ctx context.Context, login string) (*entities.User, error)
}

// LoginRequest carries the submitted login form
type LoginRequest struct {
	Login    string `form:"login" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

// CreateUserRequest carries the fields for a new account
type CreateUserRequest struct {
	Login    string `json:"login" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateTodoRequest carries the fields for a new todo
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    int     `json:"priority"`
	UserID      int64   `json:"user_id" validate:"required"`
}
