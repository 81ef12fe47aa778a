package services

import "errors"

// Error taxonomy surfaced by the service layer. Handlers translate these with
// errors.Is into HTTP statuses; anything not matching is a storage or
// infrastructure failure.
var (
	// ErrInvalidInput marks a malformed request, e.g. an empty item list or a
	// non-positive quantity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a reference to an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an authenticated caller acting on another user's
	// resource without staff rights.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState marks an operation the entity's current state does not
	// permit, e.g. cancelling a shipped order.
	ErrInvalidState = errors.New("invalid state")
)
