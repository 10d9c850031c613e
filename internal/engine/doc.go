// Package engine provides the editable document that hosts shortcut
// expansion.
//
// A Document combines a line-oriented buffer with a single cursor and the
// typing operations a terminal editor needs. It exposes the three
// operations the expansion engine relies on: reading the cursor, finding
// the word touching a position, and replacing a range in one edit.
//
// # Basic Usage
//
//	doc := engine.New(engine.WithContent("hello"))
//	doc.SetCursor(engine.Point{Line: 0, Column: 5})
//	doc.InsertRune('!')
//
// # Thread Safety
//
// All Document operations are thread-safe. Edits and cursor moves are
// serialized by the document's mutex.
package engine
