// Package key provides key event types and parsing for the input system.
//
// This package defines the types used to represent keyboard input as it
// flows from the terminal into the expansion engine:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", ";", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Ctrl+Q"
//   - Vim-style: "<C-s>", "<Space>", "<Tab>", "<CR>", "<lt>"
//
// # Logical Characters
//
// Boundary characters for shortcut expansion are single logical characters.
// Event.Char maps a key press to the character it types (Space, Tab and
// Enter included) and ParseChar parses a configured boundary into one.
package key
