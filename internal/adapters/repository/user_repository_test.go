package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoboard/core/internal/domain/entities"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func userColumns() []string {
	return []string{
		"id", "login", "password", "name", "email", "is_admin",
		"created_at", "updated_at", "deleted_at", "is_deleted",
	}
}

func TestUserRepositoryGetByCredentials(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("match", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 AND password = \$2 AND deleted_at IS NULL`).
			WithArgs("admin", "digest").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(1, "admin", "digest", "Admin", "admin@example.com", true, now, now, nil, 0))

		user, err := repo.GetByCredentials(ctx, "admin", "digest")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "admin", user.Login)
		assert.True(t, user.IsAdmin)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 AND password = \$2 AND deleted_at IS NULL`).
			WithArgs("admin", "wrong-digest").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByCredentials(ctx, "admin", "wrong-digest")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryGetByLogin(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 AND deleted_at IS NULL`).
			WithArgs("john").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(2, "john", "digest", "John Doe", "john@example.com", false, now, now, nil, 0))

		user, err := repo.GetByLogin(ctx, "john")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", user.Name)
		assert.False(t, user.IsAdmin)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login = \$1 AND deleted_at IS NULL`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByLogin(ctx, "ghost")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("assigns generated columns", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO users (.+) RETURNING id, created_at, updated_at`).
			WithArgs("jane", "digest", "Jane Doe", "jane@example.com", false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(3, now, now))

		user := &entities.User{
			Login:    "jane",
			Password: "digest",
			Name:     "Jane Doe",
			Email:    "jane@example.com",
		}
		require.NoError(t, repo.Create(ctx, user))
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, now, user.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uniqueness violation propagates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		dupErr := errors.New(`pq: duplicate key value violates unique constraint "users_login_key"`)
		mock.ExpectQuery(`INSERT INTO users (.+) RETURNING id, created_at, updated_at`).
			WithArgs("admin", "digest", "Admin Again", "other@example.com", false).
			WillReturnError(dupErr)

		user := &entities.User{
			Login:    "admin",
			Password: "digest",
			Name:     "Admin Again",
			Email:    "other@example.com",
		}
		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, dupErr)
	})
}
