// Package buffer provides a thread-safe, line-oriented text buffer.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line/column addressing with byte columns
//   - Word lookup following Unicode word segmentation (UAX #29)
//   - Revision tracking for change management
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello ;btw")
//
//	// Find the word touching a position
//	r, ok := buf.WordAt(buffer.Point{Line: 0, Column: 10})
//
//	// Replace a range in a single edit
//	end, err := buf.Replace(r, "by the way")
//
// Position Types:
//
//   - Point: Line and column position (0-indexed, column in bytes)
//   - PointRange: Half-open range [Start, End) of points
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock.
package buffer
