package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNoPath indicates a save was requested for a document without a file.
	ErrNoPath = errors.New("document has no file path")
)
