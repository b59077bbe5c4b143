package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map them to status codes.
var (
	// Request errors
	ErrValidation = errors.New("validation failed")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// State machine errors
	ErrNotActive    = errors.New("not active")
	ErrAlreadyUsed  = errors.New("already used")
	ErrNotAvailable = errors.New("not available")
	ErrConflict     = errors.New("state conflict")

	// Access errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Store or dispatcher failures
	ErrUpstream = errors.New("upstream failure")
)
