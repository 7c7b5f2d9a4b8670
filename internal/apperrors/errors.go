// Package apperrors defines the error taxonomy shared by repositories,
// services, and handlers. Failures are classified with errors.Is against
// these sentinels instead of matching message strings.
package apperrors

import "errors"

var (
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the credential pair did not match, or the
	// resolved identity is not the owner of the target resource.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation means a required field was blank or otherwise invalid.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means a signup collided with an already registered email.
	ErrConflict = errors.New("already exists")
)
