package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrLockHeld means another request currently holds the advisory lock
	// for the same slot.
	ErrLockHeld = errors.New("slot lock already held")
)
