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

// UserRepositoryImpl implements the UserRepository interface
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (login, password, name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Login, user.Password, user.Name, user.Email, user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT id, login, password, name, email, is_admin,
			created_at, updated_at, deleted_at, is_deleted
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) GetByLogin(ctx context.Context, login string) (*entities.User, error) {
	query := `
		SELECT id, login, password, name, email, is_admin,
			created_at, updated_at, deleted_at, is_deleted
		FROM users
		WHERE login = $1 AND deleted_at IS NULL`

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}

	return &user, nil
}

// GetByCredentials matches login and password hash in one query, so an
// unknown login and a wrong password produce the same not-found result.
func (r *UserRepositoryImpl) GetByCredentials(ctx context.Context, login, passwordHash string) (*entities.User, error) {
	query := `
		SELECT id, login, password, name, email, is_admin,
			created_at, updated_at, deleted_at, is_deleted
		FROM users
		WHERE login = $1 AND password = $2 AND deleted_at IS NULL`

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, login, passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by credentials: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*entities.User, error) {
	query := `
		SELECT id, login, password, name, email, is_admin,
			created_at, updated_at, deleted_at, is_deleted
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id`

	var users []*entities.User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
