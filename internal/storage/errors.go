package storage

import "errors"

// Storage errors for append-only stores.
var (
	// ErrNotFound is returned when a requested preview does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a preview with the same parameters key
	// was already stored. Append-only stores do not allow updates.
	ErrDuplicateKey = errors.New("duplicate key: append-only store does not allow updates")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
