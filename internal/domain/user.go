package domain

import (
	"strings"
	"time"
)

// User represents a registered user of the task tracker.
// The plaintext password is never stored; only the bcrypt hash is kept.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a User from an email and an already-hashed password.
// The ID is assigned by the store on creation.
// Returns an error if validation fails.
func NewUser(email, hashedPassword string) (*User, error) {
	user := &User{
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// validEmailFormat performs a basic structural check of an email address.
// Full RFC 5322 validation happens at the request layer; this is a guard
// against storing obviously broken values.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
