package expand

import (
	"fmt"
	"sync"
)

// Display renders the replacement count for the user.
type Display interface {
	SetText(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

// SetText implements Display.
func (f DisplayFunc) SetText(text string) {
	f(text)
}

// Format renders a replacement count as status text.
func Format(count int) string {
	return fmt.Sprintf("Words Autocompleted: %d", count)
}

// Counter tracks the number of successful expansions. It only grows.
type Counter struct {
	mu       sync.Mutex
	value    int
	displays []Display
}

// NewCounter creates a counter starting at initial. Negative values start at 0.
func NewCounter(initial int) *Counter {
	if initial < 0 {
		initial = 0
	}
	return &Counter{value: initial}
}

// Value returns the current count.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment adds one, updates every display and returns the new count.
func (c *Counter) Increment() int {
	c.mu.Lock()
	c.value++
	value := c.value
	displays := append([]Display(nil), c.displays...)
	c.mu.Unlock()

	text := Format(value)
	for _, d := range displays {
		d.SetText(text)
	}
	return value
}

// Attach adds a display and renders the current count on it.
func (c *Counter) Attach(d Display) {
	c.mu.Lock()
	c.displays = append(c.displays, d)
	value := c.value
	c.mu.Unlock()

	d.SetText(Format(value))
}
