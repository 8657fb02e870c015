package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusIsValid(t *testing.T) {
	tests := []struct {
		name   string
		status TaskStatus
		valid  bool
	}{
		{name: "todo", status: TaskStatusTodo, valid: true},
		{name: "in_progress", status: TaskStatusInProgress, valid: true},
		{name: "done", status: TaskStatusDone, valid: true},
		{name: "empty", status: TaskStatus(""), valid: false},
		{name: "unknown", status: TaskStatus("archived"), valid: false},
		{name: "case_sensitive", status: TaskStatus("Todo"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestNewTask(t *testing.T) {
	t.Run("valid_task", func(t *testing.T) {
		task, err := NewTask(1, "write spec", TaskStatusInProgress, 2.5)
		require.NoError(t, err)
		assert.Equal(t, "write spec", task.Title)
		assert.Equal(t, TaskStatusInProgress, task.Status)
		assert.Equal(t, 2.5, task.TimeLogged)
		assert.Equal(t, int64(1), task.OwnerID)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("empty_status_defaults_to_todo", func(t *testing.T) {
		task, err := NewTask(1, "write spec", "", 0)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusTodo, task.Status)
	})

	t.Run("empty_title_rejected", func(t *testing.T) {
		_, err := NewTask(1, "", TaskStatusTodo, 0)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		_, err := NewTask(1, "write spec", TaskStatus("blocked"), 0)
		assert.ErrorIs(t, err, ErrInvalidTaskStatus)
	})

	t.Run("negative_time_rejected", func(t *testing.T) {
		_, err := NewTask(1, "write spec", TaskStatusTodo, -0.5)
		assert.ErrorIs(t, err, ErrNegativeTimeLogged)
	})

	t.Run("missing_owner_rejected", func(t *testing.T) {
		_, err := NewTask(0, "write spec", TaskStatusTodo, 0)
		assert.ErrorIs(t, err, ErrMissingOwner)
	})
}

func TestTaskValidateAfterMutation(t *testing.T) {
	task, err := NewTask(1, "write spec", TaskStatusTodo, 0)
	require.NoError(t, err)

	task.Status = TaskStatus("nonsense")
	assert.ErrorIs(t, task.Validate(), ErrInvalidTaskStatus)

	task.Status = TaskStatusDone
	task.TimeLogged = -1
	assert.ErrorIs(t, task.Validate(), ErrNegativeTimeLogged)
}
