package auth

import (
	"errors"
	"strings"
)

var (
	// ErrEmailTaken is returned by Register when the email is in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// indistinguishably.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned for inactive accounts. Distinct from
	// ErrInvalidCredentials on purpose: it leaks account existence, a
	// documented trade-off in favor of a usable error message.
	ErrAccountDisabled = errors.New("account disabled")
)

// ValidationError carries every input violation found, not just the first.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
