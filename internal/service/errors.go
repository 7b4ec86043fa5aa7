package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when a login password does not
	// match the stored hash.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMissingToken is returned when a protected request carries no
	// bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken covers bad signatures, wrong algorithms, expired
	// tokens and tokens whose subject no longer resolves to a user.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrPermissionDenied is returned when the authenticated identity
	// does not own the target resource.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateUsername is returned when a registration collides with
	// an existing username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateTitle is returned when a movie submission collides
	// with an existing title.
	ErrDuplicateTitle = errors.New("movie title already exists")
)

// ValidationError collects every violated registration rule, not just
// the first one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
