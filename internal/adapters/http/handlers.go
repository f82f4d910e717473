package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoboard/core/internal/application/services"
	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/infrastructure/config"
	"github.com/todoboard/core/internal/infrastructure/database"
	"github.com/todoboard/core/internal/infrastructure/logger"
	"github.com/todoboard/core/internal/infrastructure/session"
	"github.com/todoboard/core/internal/ports"
)

// AuthHandler handles the login and logout pages
type AuthHandler struct {
	authService *services.AuthService
	store       ports.SessionStore
	cookieName  string
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store ports.SessionStore, cfg config.SessionConfig, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		cookieName:  cfg.CookieName,
		logger:      logger,
	}
}

type loginPage struct {
	Error string
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login handles the submitted login form. A failed attempt re-renders the
// form with one generic message, never saying whether the login or the
// password was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "login.html", loginPage{Error: entities.ErrInvalidCredentials.Error()})
	}

	seed, err := h.authService.Authenticate(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			h.logger.LogSecurityEvent("login_rejected", req.Login, c.RealIP(), nil)
			return c.Render(http.StatusOK, "login.html", loginPage{Error: err.Error()})
		}
		return err
	}

	token := session.NewToken()
	session.WriteSeed(h.store, token, seed)

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session and sends the user back to the login page
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		h.store.Clear(cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusSeeOther, "/login")
}

// HomeHandler handles the todo-list home page
type HomeHandler struct {
	userService *services.UserService
	todoService *services.TodoService
	logger      *logger.Logger
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(userService *services.UserService, todoService *services.TodoService, logger *logger.Logger) *HomeHandler {
	return &HomeHandler{
		userService: userService,
		todoService: todoService,
		logger:      logger,
	}
}

type homePage struct {
	Name  string
	Login string
	Todos []entities.TodoView
}

// Home renders the logged-in user's todos. Everything the template touches
// is materialized here, before rendering starts.
func (h *HomeHandler) Home(c echo.Context) error {
	login := getLoginFromContext(c)

	user, err := h.userService.GetByLogin(c.Request().Context(), login)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			// Session identity no longer matches an account.
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return err
	}

	todos, err := h.todoService.LoadUserTodos(c.Request().Context(), user.ID)
	if err != nil {
		h.logger.Error("Load todos failed", "error", err, "user_id", user.ID)
		return err
	}

	return c.Render(http.StatusOK, "home.html", homePage{
		Name:  user.Name,
		Login: user.Login,
		Todos: todos,
	})
}

// BootstrapHandler exposes the destructive development reset
type BootstrapHandler struct {
	db     *database.DB
	logger *logger.Logger
}

// NewBootstrapHandler creates a new bootstrap handler
func NewBootstrapHandler(db *database.DB, logger *logger.Logger) *BootstrapHandler {
	return &BootstrapHandler{db: db, logger: logger}
}

// InitDB drops and recreates the schema and loads the seed dataset. The
// route is only registered in development.
func (h *BootstrapHandler) InitDB(c echo.Context) error {
	if err := h.db.Bootstrap(c.Request().Context()); err != nil {
		h.logger.Error("Database bootstrap failed", "error", err)
		return err
	}

	h.logger.Info("Database initialized")
	return c.HTML(http.StatusOK, "<h1>Database initialized.</h1>")
}

// getLoginFromContext extracts the login identity the guard stored on the
// request context.
func getLoginFromContext(c echo.Context) string {
	login, _ := c.Get("login").(string)
	return login
}
