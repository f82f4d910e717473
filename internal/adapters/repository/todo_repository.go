package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/ports"
)

// TodoRepositoryImpl implements the TodoRepository interface
type TodoRepositoryImpl struct {
	db *sqlx.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *sqlx.DB) ports.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *entities.Todo) error {
	query := `
		INSERT INTO todos (title, description, status, due_date, priority, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Description, todo.Status, todo.DueDate,
		todo.Priority, todo.UserID,
	).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Todo, error) {
	query := `
		SELECT id, title, description, status, due_date, priority, user_id,
			created_at, updated_at, deleted_at, is_deleted
		FROM todos
		WHERE id = $1 AND deleted_at IS NULL`

	var todo entities.Todo
	err := r.db.GetContext(ctx, &todo, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo by id: %w", err)
	}

	return &todo, nil
}

// ListByUser returns the user's todos in insertion order. No explicit sort
// beyond the surrogate key is applied; id order is insertion order.
func (r *TodoRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]*entities.Todo, error) {
	query := `
		SELECT id, title, description, status, due_date, priority, user_id,
			created_at, updated_at, deleted_at, is_deleted
		FROM todos
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id`

	var todos []*entities.Todo
	err := r.db.SelectContext(ctx, &todos, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos by user: %w", err)
	}

	return todos, nil
}

// TagNamesByTodoIDs resolves todo→tag_name for the given todos in one join.
// Rows are ordered by edge id, so names within a todo follow the order the
// tags were attached.
func (r *TodoRepositoryImpl) TagNamesByTodoIDs(ctx context.Context, todoIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string)
	if len(todoIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT tt.todo_id, t.name
		FROM todo_tags tt
		JOIN tags t ON t.id = tt.tag_id AND t.deleted_at IS NULL
		WHERE tt.todo_id IN (?) AND tt.deleted_at IS NULL
		ORDER BY tt.id`, todoIDs)
	if err != nil {
		return nil, fmt.Errorf("build tag names query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query tag names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var todoID int64
		var name string
		if err := rows.Scan(&todoID, &name); err != nil {
			return nil, fmt.Errorf("scan tag name: %w", err)
		}
		result[todoID] = append(result[todoID], name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag names: %w", err)
	}

	return result, nil
}

// AttachTag inserts one todo/tag edge. The UNIQUE (todo_id, tag_id) index
// rejects a duplicate edge; the violation propagates to the caller.
func (r *TodoRepositoryImpl) AttachTag(ctx context.Context, todoID, tagID int64) error {
	query := `INSERT INTO todo_tags (todo_id, tag_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, todoID, tagID); err != nil {
		return fmt.Errorf("attach tag: %w", err)
	}

	return nil
}
