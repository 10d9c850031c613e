// Package expand implements live shortcut expansion.
//
// Key presses are fed one at a time to an Expander. A Trigger watches for
// the configured start boundary character and arms; when the end boundary
// character arrives while armed, the Expander extracts the word touching
// the cursor of the active Surface, looks it up in a Source (usually a
// Table) and, on a hit, replaces the start character and the word with the
// expansion in a single edit. Each expansion increments a Counter.
//
// The word itself is never accumulated from key presses. It is read back
// from the surface when the end boundary arrives, so arrow keys, mouse
// edits or other keys typed between the boundaries do not confuse the
// trigger.
//
// # Ordering
//
// The Expander must see a key before the host inserts it into the
// document. The end boundary character is therefore not part of the
// extracted word and remains in the text after the expansion.
//
// # Threading
//
// HandleKey is meant to be called from the goroutine that delivers input.
// Tables may be changed from other goroutines between key presses; every
// resolution reads the current content.
package expand
