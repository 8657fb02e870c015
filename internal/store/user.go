package store

import (
	"context"

	"github.com/phrazzld/devtask-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and fills in the generated ID and creation
	// timestamp. The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken; the uniqueness
	// check is enforced atomically by the store, not by a prior read.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
