// Package backend provides the terminal backend that hosts the editing
// surface: it turns terminal input into key events and draws document
// lines with a status line.
package backend

import "github.com/dshills/wordsmith/internal/input/key"

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventFocus
	EventInterrupt
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Focused is set for EventFocus.
	Focused bool

	// Data is set for EventInterrupt.
	Data any
}

// Attr is a set of text attributes.
type Attr int

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrDim
)

// Has returns true if the set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the terminal are ignored.
	SetCell(x, y int, r rune, attr Attr)

	// Clear clears the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits for and returns the next event. It returns an event
	// of type EventClosed after Shutdown.
	PollEvent() Event

	// Interrupt wakes PollEvent with an EventInterrupt carrying data.
	Interrupt(data any) error

	// Beep produces an audible or visual bell.
	Beep()
}
