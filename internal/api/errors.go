package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/devtask-api/internal/service/auth"
	"github.com/phrazzld/devtask-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This
// keeps internal error types from leaking to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate email surfaces as 400, matching the registration contract.
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a short, user-facing detail string for the
// error. Internal error text is never passed through.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "invalid or expired token"

	case errors.Is(err, store.ErrTaskNotFound):
		return "task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrEmailExists):
		return "email already registered"

	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid request data"

	default:
		return "an unexpected error occurred"
	}
}
