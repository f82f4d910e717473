package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todoboard/core/internal/infrastructure/config"
	"github.com/todoboard/core/internal/infrastructure/logger"
	"github.com/todoboard/core/internal/infrastructure/session"
	"github.com/todoboard/core/internal/ports"
)

// IdleTimeout is the fixed session idle limit. A session whose last activity
// is older than this is cleared on the next request.
const IdleTimeout = 15 * time.Minute

// Context keys set by the guard for downstream handlers.
const (
	ContextKeyLogin = "login"
	ContextKeyToken = "session_token"
)

// RequireLogin gates every protected route. Paths matching one of the
// configured skip prefixes bypass the guard entirely. For everything else:
//
//	no session or no login identity  -> redirect to /login
//	idle for more than IdleTimeout   -> clear session, redirect to /login
//	otherwise                        -> refresh last_active, proceed
//
// The last_active refresh happens only on the proceed path; a missing or
// expired session never has its timestamp touched. The read-modify-write is
// not atomic against a concurrent request on the same session: both would
// extend the timeout, which is harmless.
func RequireLogin(cfg config.SessionConfig, store ports.SessionStore, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range cfg.SkipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			cookie, err := c.Cookie(cfg.CookieName)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			token := cookie.Value

			login, ok := store.Get(token, session.KeyLogin)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			if raw, ok := store.Get(token, session.KeyLastActive); ok {
				lastActive, parseErr := time.Parse(session.TimeFormat, raw)
				if parseErr == nil && time.Since(lastActive) > IdleTimeout {
					store.Clear(token)
					log.LogSecurityEvent("session_expired", login, c.RealIP(), map[string]interface{}{
						"idle": time.Since(lastActive).String(),
					})
					return c.Redirect(http.StatusSeeOther, "/login")
				}
			}

			store.Set(token, session.KeyLastActive, time.Now().Format(session.TimeFormat))

			c.Set(ContextKeyLogin, login)
			c.Set(ContextKeyToken, token)

			return next(c)
		}
	}
}
