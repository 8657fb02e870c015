package domain

import "time"

// TaskStatus represents the progress state of a task.
type TaskStatus string

// Valid task statuses. Any status may change to any other status; there are
// no transition restrictions.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether the status is one of the enumerated values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Task represents a single unit of work owned by exactly one user.
// The owner is fixed at creation and never reassigned.
type Task struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Status     TaskStatus `json:"status"`
	TimeLogged float64    `json:"time_logged"` // hours
	OwnerID    int64      `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewTask creates a Task owned by the given user. An empty status defaults
// to todo. The ID is assigned by the store on creation.
// Returns an error if validation fails.
func NewTask(ownerID int64, title string, status TaskStatus, timeLogged float64) (*Task, error) {
	if status == "" {
		status = TaskStatusTodo
	}

	task := &Task{
		Title:      title,
		Status:     status,
		TimeLogged: timeLogged,
		OwnerID:    ownerID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	if t.TimeLogged < 0 {
		return ErrNegativeTimeLogged
	}

	if t.OwnerID == 0 {
		return ErrMissingOwner
	}

	return nil
}
