package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/infrastructure/logger"
	"github.com/todoboard/core/internal/ports"
)

// TodoService handles todo operations
type TodoService struct {
	todoRepo ports.TodoRepository
	logger   *logger.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo ports.TodoRepository, logger *logger.Logger) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// LoadUserTodos materializes the user's todos into detached views. All
// nested associations are resolved here, inside the request's unit of work;
// the rendering layer gets plain values and performs no further data access.
//
// Todos come back in insertion order, tag names in edge insertion order.
func (s *TodoService) LoadUserTodos(ctx context.Context, userID int64) ([]entities.TodoView, error) {
	todos, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load todos for user %d: %w", userID, err)
	}

	ids := make([]int64, len(todos))
	for i, t := range todos {
		ids[i] = t.ID
	}

	tagNames, err := s.todoRepo.TagNamesByTodoIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load tags for user %d: %w", userID, err)
	}

	views := make([]entities.TodoView, 0, len(todos))
	for _, t := range todos {
		names := tagNames[t.ID]
		if names == nil {
			names = []string{}
		}
		views = append(views, entities.TodoView{
			Title:    t.Title,
			Status:   t.Status,
			DueDate:  t.DueDate,
			TagNames: names,
		})
	}

	return views, nil
}

// CreateTodo creates a todo for a user. A missing due date defaults to a
// pseudo-random offset of 0, 14, 28, 42 or 56 days from now.
func (s *TodoService) CreateTodo(ctx context.Context, req ports.CreateTodoRequest) (*entities.Todo, error) {
	status := entities.TodoStatus(req.Status)
	if req.Status == "" {
		status = entities.TodoStatusPending
	}
	if !status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}

	priority := req.Priority
	if priority == 0 {
		priority = 1
	}

	due := defaultDueDate()
	todo := &entities.Todo{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     &due,
		Priority:    priority,
		UserID:      req.UserID,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.logger.Info("Todo created", "todo_id", todo.ID, "user_id", todo.UserID)
	return todo, nil
}

func defaultDueDate() time.Time {
	return time.Now().Add(time.Duration(14*rand.Intn(5)) * 24 * time.Hour)
}
