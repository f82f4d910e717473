package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/infrastructure/logger"
)

// fakeUserRepo matches credentials the way the real store does: login and
// password hash together, or nothing.
type fakeUserRepo struct {
	users []*entities.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) GetByLogin(ctx context.Context, login string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) GetByCredentials(ctx context.Context, login, passwordHash string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Login == login && u.Password == passwordHash {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	return f.users, nil
}

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	repo := &fakeUserRepo{
		users: []*entities.User{
			{
				Record:   entities.Record{ID: 1},
				Login:    "admin",
				Password: HashPassword("admin"),
				Name:     "Admin",
				Email:    "admin@example.com",
				IsAdmin:  true,
			},
			{
				Record:   entities.Record{ID: 2},
				Login:    "john",
				Password: HashPassword("123456"),
				Name:     "John Doe",
				Email:    "john@example.com",
			},
		},
	}
	return NewAuthService(repo, logger.NewNop()), repo
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	t.Run("valid credentials seed a session", func(t *testing.T) {
		before := time.Now()
		seed, err := svc.Authenticate(ctx, "admin", "admin")
		require.NoError(t, err)
		require.NotNil(t, seed)

		assert.Equal(t, "admin", seed.Login)
		assert.True(t, seed.IsAdmin)
		assert.Equal(t, int64(1), seed.UserID)
		assert.Equal(t, "Admin", seed.Name)
		assert.Equal(t, "admin@example.com", seed.Email)
		assert.Equal(t, seed.LoginTime, seed.LastActive)
		assert.False(t, seed.LoginTime.Before(before))
	})

	t.Run("non-admin seed carries is_admin false", func(t *testing.T) {
		seed, err := svc.Authenticate(ctx, "john", "123456")
		require.NoError(t, err)
		assert.False(t, seed.IsAdmin)
		assert.Equal(t, int64(2), seed.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		seed, err := svc.Authenticate(ctx, "admin", "nope")
		assert.Nil(t, seed)
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		seed, err := svc.Authenticate(ctx, "ghost", "admin")
		assert.Nil(t, seed)
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("failure modes are indistinguishable", func(t *testing.T) {
		_, wrongPassErr := svc.Authenticate(ctx, "admin", "nope")
		_, unknownLoginErr := svc.Authenticate(ctx, "ghost", "admin")
		require.Error(t, wrongPassErr)
		require.Error(t, unknownLoginErr)
		assert.Equal(t, wrongPassErr.Error(), unknownLoginErr.Error())
		assert.Equal(t, "user not found or wrong password", wrongPassErr.Error())
	})
}
