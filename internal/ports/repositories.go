package ports

import (
	"context"

	"github.com/todoboard/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByLogin(ctx context.Context, login string) (*entities.User, error)
	// GetByCredentials performs the combined (login, password hash) lookup.
	// A wrong password and an unknown login are indistinguishable: both
	// return entities.ErrUserNotFound.
	GetByCredentials(ctx context.Context, login, passwordHash string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) error
	GetByID(ctx context.Context, id int64) (*entities.Todo, error)
	// ListByUser returns the user's todos in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]*entities.Todo, error)
	// TagNamesByTodoIDs resolves the todo→tag join for the given todos.
	// Tag names are ordered by edge insertion within each todo.
	TagNamesByTodoIDs(ctx context.Context, todoIDs []int64) (map[int64][]string, error)
	AttachTag(ctx context.Context, todoID, tagID int64) error
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(ctx context.Context, tag *entities.Tag) error
	GetByName(ctx context.Context, name string) (*entities.Tag, error)
	List(ctx context.Context) ([]*entities.Tag, error)
}

// SessionStore is the per-request session collaborator: a mapping from
// string keys to values, scoped to one opaque client-held token. The store
// must be safe for concurrent access across requests; consistency of
// interleaved writes to a single session is not guaranteed.
type SessionStore interface {
	// Get returns the value for key in the session identified by token.
	Get(token, key string) (string, bool)
	// Set writes key=value into the session, creating it if needed.
	Set(token, key, value string)
	// Clear removes every key of the session.
	Clear(token string)
}
