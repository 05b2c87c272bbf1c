package compliance

import "errors"

// Domain errors.
var (
	// ErrNotFound indicates a requested record was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a create request failed validation before any write.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates a conflict with existing data, such as a duplicate
	// requirement identifier.
	ErrConflict = errors.New("conflict")
)
