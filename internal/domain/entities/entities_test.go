package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodoStatusIsValid(t *testing.T) {
	assert.True(t, TodoStatusPending.IsValid())
	assert.True(t, TodoStatusInProgress.IsValid())
	assert.True(t, TodoStatusCompleted.IsValid())
	assert.False(t, TodoStatus("done").IsValid())
	assert.False(t, TodoStatus("").IsValid())
}

func TestTodoIsOverdue(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	t.Run("past due and not completed", func(t *testing.T) {
		todo := &Todo{Status: TodoStatusPending, DueDate: &past}
		assert.True(t, todo.IsOverdue())
	})

	t.Run("past due but completed", func(t *testing.T) {
		todo := &Todo{Status: TodoStatusCompleted, DueDate: &past}
		assert.False(t, todo.IsOverdue())
	})

	t.Run("due in the future", func(t *testing.T) {
		todo := &Todo{Status: TodoStatusPending, DueDate: &future}
		assert.False(t, todo.IsOverdue())
	})

	t.Run("no due date", func(t *testing.T) {
		todo := &Todo{Status: TodoStatusPending}
		assert.False(t, todo.IsOverdue())
	})
}

func TestTodoIsCompleted(t *testing.T) {
	assert.True(t, (&Todo{Status: TodoStatusCompleted}).IsCompleted())
	assert.False(t, (&Todo{Status: TodoStatusInProgress}).IsCompleted())
}
