package store

import (
	"context"

	"github.com/phrazzld/devtask-api/internal/domain"
)

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged; present fields replace the stored value.
type TaskPatch struct {
	Title      *string
	Status     *domain.TaskStatus
	TimeLogged *float64
}

// Apply copies the patch's present fields onto the task.
func (p TaskPatch) Apply(task *domain.Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.TimeLogged != nil {
		task.TimeLogged = *p.TimeLogged
	}
}

// TaskStore defines the interface for task data persistence. Lookups,
// updates, and deletes are owner-scoped: a task owned by a different user
// is indistinguishable from a task that does not exist.
type TaskStore interface {
	// Create saves a new task and fills in the generated ID and creation
	// timestamp.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves all tasks owned by the given user, in insertion
	// order. Returns an empty slice when the user has no tasks.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)

	// GetForOwner retrieves a task by ID, scoped to the given owner.
	// Returns ErrTaskNotFound if the task does not exist or is owned by a
	// different user.
	GetForOwner(ctx context.Context, id, ownerID int64) (*domain.Task, error)

	// Update writes the task's mutable fields (title, status, time logged),
	// scoped to the task's owner.
	// Returns ErrTaskNotFound under the same conditions as GetForOwner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task by ID, scoped to the given owner.
	// Returns ErrTaskNotFound under the same conditions as GetForOwner.
	Delete(ctx context.Context, id, ownerID int64) error
}
