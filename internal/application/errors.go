package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("not signed in")
	// ErrSessionEnded is returned when the session was signed out or
	// switched while a remote call was in flight; its result is dropped
	ErrSessionEnded = errors.New("session ended")
)

// ValidationError represents a validation failure with details.
// It is raised before any remote call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RemoteError represents a failed call to the remote store.
// Local state is left as it was before the call.
type RemoteError struct {
	Op  string // e.g. "create country"
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v) || errors.Is(err, ErrUnauthenticated)
}

// IsRemote reports whether err came from the remote store
func IsRemote(err error) bool {
	var r *RemoteError
	return errors.As(err, &r)
}
