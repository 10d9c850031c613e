package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrPointOutOfRange indicates a point is outside the buffer.
	ErrPointOutOfRange = errors.New("point out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrReadOnly indicates a write was attempted on a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")
)
