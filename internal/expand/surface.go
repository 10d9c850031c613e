package expand

import "fmt"

// Position is a location in a surface: a 0-indexed line and a 0-indexed
// character column within that line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open range [From, To) of a surface plus the text it covers.
type Span struct {
	From Position
	To   Position
	Text string
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%s,%s) %q", s.From, s.To, s.Text)
}

// Surface is the editing surface expansions are applied to.
type Surface interface {
	// Cursor returns the current cursor position.
	Cursor() Position

	// WordAt returns the span of the word touching pos using the surface's
	// word-boundary rules. It reports false when no word touches pos and
	// never modifies the surface.
	WordAt(pos Position) (Span, bool)

	// Replace replaces the text in [from, to) with text as one edit.
	Replace(from, to Position, text string) error
}

// SurfaceFunc returns the currently focused surface, or nil if none.
type SurfaceFunc func() Surface

// StaticSurface returns a SurfaceFunc that always yields s.
func StaticSurface(s Surface) SurfaceFunc {
	return func() Surface { return s }
}
