package domain

import "errors"

// Common validation errors returned by entity constructors and Validate methods.
var (
	// ErrEmptyEmail is returned when a user email is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when a user email is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyHashedPassword is returned when a user has no password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of the
	// enumerated values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrNegativeTimeLogged is returned when a task's logged time is negative.
	ErrNegativeTimeLogged = errors.New("time logged cannot be negative")

	// ErrMissingOwner is returned when a task has no owner.
	ErrMissingOwner = errors.New("task must have an owner")
)
