package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoboard/core/internal/infrastructure/config"
	"github.com/todoboard/core/internal/infrastructure/logger"
	"github.com/todoboard/core/internal/infrastructure/session"
)

func guardFixture() (echo.MiddlewareFunc, *session.MemoryStore) {
	store := session.NewMemoryStore()
	cfg := config.SessionConfig{
		CookieName:   "session_id",
		SkipPrefixes: []string{"/login", "/static/", "/health"},
	}
	return RequireLogin(cfg, store, logger.NewNop()), store
}

func invokeGuard(t *testing.T, mw echo.MiddlewareFunc, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := mw(func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, handlerCalled, c
}

func TestRequireLoginSkipPrefixes(t *testing.T) {
	mw, _ := guardFixture()

	for _, path := range []string{"/login", "/static/style.css", "/health"} {
		rec, called, _ := invokeGuard(t, mw, path, nil)
		assert.True(t, called, "handler must run for %s without a session", path)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequireLoginNoCookie(t *testing.T) {
	mw, _ := guardFixture()

	rec, called, _ := invokeGuard(t, mw, "/", nil)
	assert.False(t, called, "handler must not run without a cookie")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireLoginUnknownToken(t *testing.T) {
	mw, _ := guardFixture()

	cookie := &http.Cookie{Name: "session_id", Value: "stale-token"}
	rec, called, _ := invokeGuard(t, mw, "/", cookie)
	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireLoginExpiredSession(t *testing.T) {
	mw, store := guardFixture()

	token := "tok-expired"
	store.Set(token, session.KeyLogin, "admin")
	store.Set(token, session.KeyLastActive,
		time.Now().Add(-IdleTimeout-time.Minute).Format(session.TimeFormat))

	cookie := &http.Cookie{Name: "session_id", Value: token}
	rec, called, _ := invokeGuard(t, mw, "/", cookie)
	assert.False(t, called, "handler must not run for an expired session")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	_, ok := store.Get(token, session.KeyLogin)
	assert.False(t, ok, "expired session must be cleared")
}

func TestRequireLoginActiveSession(t *testing.T) {
	mw, store := guardFixture()

	token := "tok-active"
	stale := time.Now().Add(-IdleTimeout + time.Minute)
	store.Set(token, session.KeyLogin, "admin")
	store.Set(token, session.KeyLastActive, stale.Format(session.TimeFormat))

	cookie := &http.Cookie{Name: "session_id", Value: token}
	rec, called, c := invokeGuard(t, mw, "/", cookie)
	assert.True(t, called, "handler must run for an active session")
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "admin", c.Get(ContextKeyLogin))
	assert.Equal(t, token, c.Get(ContextKeyToken))

	raw, ok := store.Get(token, session.KeyLastActive)
	require.True(t, ok)
	refreshed, err := time.Parse(session.TimeFormat, raw)
	require.NoError(t, err)
	assert.True(t, refreshed.After(stale), "last_active must be refreshed on the proceed path")
}

func TestRequireLoginMissingLastActive(t *testing.T) {
	mw, store := guardFixture()

	// A session seeded without a last_active timestamp is treated as live.
	token := "tok-no-ts"
	store.Set(token, session.KeyLogin, "john")

	cookie := &http.Cookie{Name: "session_id", Value: token}
	rec, called, _ := invokeGuard(t, mw, "/", cookie)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := store.Get(token, session.KeyLastActive)
	assert.True(t, ok, "proceed path must stamp last_active")
}

func TestRequireLoginUnparseableLastActive(t *testing.T) {
	mw, store := guardFixture()

	token := "tok-bad-ts"
	store.Set(token, session.KeyLogin, "john")
	store.Set(token, session.KeyLastActive, "not-a-timestamp")

	cookie := &http.Cookie{Name: "session_id", Value: token}
	_, called, _ := invokeGuard(t, mw, "/", cookie)
	assert.True(t, called, "a corrupt timestamp must not lock the user out")

	raw, ok := store.Get(token, session.KeyLastActive)
	require.True(t, ok)
	_, err := time.Parse(session.TimeFormat, raw)
	assert.NoError(t, err, "corrupt timestamp is overwritten with a valid one")
}
