package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTodoNotFound  = errors.New("todo not found")
	ErrTagNotFound   = errors.New("tag not found")
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCredentials deliberately carries the same message for an
	// unknown login and a wrong password.
	ErrInvalidCredentials = errors.New("user not found or wrong password")
)

type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
)

// Record holds the columns shared by every table: surrogate key, audit
// timestamps and the soft-delete pair.
type Record struct {
	ID        int64      `json:"id" db:"id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" db:"deleted_at"`
	IsDeleted int        `json:"is_deleted" db:"is_deleted"`
}

// User represents an account. Login and email are globally unique.
type User struct {
	Record
	Login    string `json:"login" db:"login"`
	Password string `json:"-" db:"password"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	IsAdmin  bool   `json:"is_admin" db:"is_admin"`
}

// Todo represents a task owned by exactly one user.
type Todo struct {
	Record
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Status      TodoStatus `json:"status" db:"status"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	Priority    int        `json:"priority" db:"priority"`
	UserID      int64      `json:"user_id" db:"user_id"`
}

// Tag is a label shared across all users.
type Tag struct {
	Record
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// TodoTag is one edge of the many-to-many todo/tag relationship.
type TodoTag struct {
	Record
	TodoID int64 `json:"todo_id" db:"todo_id"`
	TagID  int64 `json:"tag_id" db:"tag_id"`
}

// SessionSeed is the set of values written verbatim into a fresh session
// after a successful login.
type SessionSeed struct {
	Login      string
	IsAdmin    bool
	UserID     int64
	Name       string
	Email      string
	LoginTime  time.Time
	LastActive time.Time
}

// TodoView is a fully detached snapshot of a todo with its tag names
// resolved. It is safe to use after the unit of work that built it has
// closed; nothing in it requires further fetching.
type TodoView struct {
	Title    string     `json:"title"`
	Status   TodoStatus `json:"status"`
	DueDate  *time.Time `json:"due_date"`
	TagNames []string   `json:"tag_names"`
}

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted:
		return true
	default:
		return false
	}
}

func (t *Todo) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && t.Status != TodoStatusCompleted
}

func (t *Todo) IsCompleted() bool {
	return t.Status == TodoStatusCompleted
}
