// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrUnauthorized       = errors.New("unauthorized")          // Row exists but belongs to another user
	ErrDefaultCategory    = errors.New("cannot delete default category")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Add more specific errors as needed
)

// IsError reports whether err wraps target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
