package api

import "github.com/phrazzld/devtask-api/internal/domain"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse defines the public representation of a user. The password
// hash and timestamps are never exposed.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTaskRequest defines the payload for task creation. Status defaults
// to todo and time logged to 0.0 when omitted.
type CreateTaskRequest struct {
	Title      string  `json:"title"       validate:"required"`
	Status     string  `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	TimeLogged float64 `json:"time_logged" validate:"omitempty,gte=0"`
}

// UpdateTaskRequest defines the payload for partial task updates. Nil
// fields leave the stored value unchanged.
type UpdateTaskRequest struct {
	Title      *string  `json:"title"       validate:"omitempty,min=1"`
	Status     *string  `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	TimeLogged *float64 `json:"time_logged" validate:"omitempty,gte=0"`
}

// TaskResponse defines the JSON shape of a task.
type TaskResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	TimeLogged float64 `json:"time_logged"`
}

// newTaskResponse converts a domain task to its response representation.
func newTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:         task.ID,
		Title:      task.Title,
		Status:     string(task.Status),
		TimeLogged: task.TimeLogged,
	}
}
