// Package service implements the application's business rules: account
// registration and login, and the project/task ownership model with its
// authorization checks. Persistence is delegated to repository interfaces.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound and ErrInvalidPassword are kept distinct so login
	// attempts can be logged precisely; handlers present both to the client
	// as a credential failure.
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNotFound means the addressed resource does not exist. The wrapped
	// variants name the resource so handlers can answer with the right
	// message; errors.Is against ErrNotFound matches all of them.
	ErrNotFound        = errors.New("not found")
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrTaskNotFound    = fmt.Errorf("task %w", ErrNotFound)

	// ErrForbidden means the resource exists but belongs to another user.
	ErrForbidden = errors.New("forbidden")

	// ErrProjectQuota means the owner already has the maximum number of
	// projects.
	ErrProjectQuota = errors.New("project limit reached")

	// ErrTaskMismatch means the task exists but belongs to a different
	// project than the one addressed.
	ErrTaskMismatch = errors.New("task does not belong to this project")
)

// ValidationError reports client input that fails validation. The message is
// safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
