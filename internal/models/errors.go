package models

import "errors"

// Domain errors returned by the card store. Store failures are wrapped around
// these with %w, so callers match them with errors.Is.
var (
	// ErrInvalidColumn indicates the referenced column does not exist
	ErrInvalidColumn = errors.New("column does not exist")

	// ErrCardNotFound indicates the card has no content or position row
	ErrCardNotFound = errors.New("card not found")

	// ErrDuplicateID indicates an insert with an id that is already taken
	ErrDuplicateID = errors.New("card id already exists")

	// ErrConstraintViolation indicates the store rejected a write that would
	// break the unique (column, position) constraint. It is never retried.
	ErrConstraintViolation = errors.New("position constraint violated")

	// ErrStoreUnavailable indicates a transport, connection or lock failure.
	// The whole operation may be retried by the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
