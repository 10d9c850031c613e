package engine

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/wordsmith/internal/engine/buffer"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position (byte column).
	Point = buffer.Point

	// PointRange represents a half-open range of points.
	PointRange = buffer.PointRange
)

// Document is an editable text with a single cursor.
type Document struct {
	mu sync.RWMutex

	id       string
	path     string
	buf      *buffer.Buffer
	cursor   Point
	modified bool

	readOnly    bool
	initContent string
}

// New creates a document with the given options.
func New(opts ...Option) *Document {
	d := &Document{id: uuid.New().String()}
	for _, opt := range opts {
		opt(d)
	}

	var bufOpts []buffer.Option
	if d.readOnly {
		bufOpts = append(bufOpts, buffer.WithReadOnly())
	}
	d.buf = buffer.NewBufferFromString(d.initContent, bufOpts...)
	d.initContent = ""
	return d
}

// Open loads a document from path. A missing file yields an empty
// document bound to that path.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	opts = append([]Option{WithContent(string(data)), WithPath(path)}, opts...)
	return New(opts...), nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() string {
	return d.id
}

// Path returns the file path, or "" for scratch documents.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Buffer returns the underlying buffer.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// Text returns the whole document text.
func (d *Document) Text() string {
	return d.buf.Text()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.buf.LineCount()
}

// LineText returns the text of a line.
func (d *Document) LineText(line int) string {
	return d.buf.LineText(line)
}

// IsModified reports whether the document changed since it was loaded or saved.
func (d *Document) IsModified() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modified
}

// Cursor returns the cursor position.
func (d *Document) Cursor() Point {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cursor
}

// SetCursor moves the cursor, clamping it into the document.
func (d *Document) SetCursor(p Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = d.buf.ClampPoint(p)
}

// WordAt returns the range and text of the word touching p.
func (d *Document) WordAt(p Point) (PointRange, string, bool) {
	r, ok := d.buf.WordAt(p)
	if !ok {
		return PointRange{}, "", false
	}
	text, err := d.buf.TextRange(r)
	if err != nil {
		return PointRange{}, "", false
	}
	return r, text, true
}

// Replace replaces the text in r with text as a single edit.
// A cursor at or after the end of r keeps its distance to the following
// text; a cursor inside r moves to the end of the inserted text.
func (d *Document) Replace(r PointRange, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	end, err := d.buf.Replace(r, text)
	if err != nil {
		return err
	}
	d.modified = true

	switch {
	case d.cursor.Before(r.Start):
		// unaffected
	case d.cursor.Before(r.End):
		d.cursor = end
	case d.cursor.Line == r.End.Line:
		d.cursor = Point{Line: end.Line, Column: end.Column + d.cursor.Column - r.End.Column}
	default:
		d.cursor.Line += end.Line - r.End.Line
	}
	return nil
}

// InsertText inserts text at the cursor and moves the cursor after it.
func (d *Document) InsertText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	end, err := d.buf.Insert(d.cursor, text)
	if err != nil {
		return err
	}
	d.cursor = end
	d.modified = true
	return nil
}

// InsertRune inserts a single character at the cursor.
func (d *Document) InsertRune(r rune) error {
	return d.InsertText(string(r))
}

// Backspace deletes the character before the cursor, joining lines at
// column 0. It is a no-op at the start of the document.
func (d *Document) Backspace() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	start, ok := d.prevPositionLocked(d.cursor)
	if !ok {
		return nil
	}
	if err := d.buf.Delete(PointRange{Start: start, End: d.cursor}); err != nil {
		return err
	}
	d.cursor = start
	d.modified = true
	return nil
}

// MoveLeft moves the cursor one character left, wrapping to the previous line.
func (d *Document) MoveLeft() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.prevPositionLocked(d.cursor); ok {
		d.cursor = p
	}
}

// MoveRight moves the cursor one character right, wrapping to the next line.
func (d *Document) MoveRight() {
	d.mu.Lock()
	defer d.mu.Unlock()

	line := d.buf.LineText(d.cursor.Line)
	switch {
	case d.cursor.Column < len(line):
		_, size := utf8.DecodeRuneInString(line[d.cursor.Column:])
		d.cursor.Column += size
	case d.cursor.Line < d.buf.LineCount()-1:
		d.cursor = Point{Line: d.cursor.Line + 1}
	}
}

// MoveUp moves the cursor to the previous line, keeping the column when possible.
func (d *Document) MoveUp() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cursor.Line > 0 {
		d.cursor = d.buf.ClampPoint(Point{Line: d.cursor.Line - 1, Column: d.cursor.Column})
	}
}

// MoveDown moves the cursor to the next line, keeping the column when possible.
func (d *Document) MoveDown() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cursor.Line < d.buf.LineCount()-1 {
		d.cursor = d.buf.ClampPoint(Point{Line: d.cursor.Line + 1, Column: d.cursor.Column})
	}
}

// MoveHome moves the cursor to the start of the line.
func (d *Document) MoveHome() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor.Column = 0
}

// MoveEnd moves the cursor to the end of the line.
func (d *Document) MoveEnd() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor.Column = d.buf.LineLen(d.cursor.Line)
}

func (d *Document) prevPositionLocked(p Point) (Point, bool) {
	if p.Column > 0 {
		line := d.buf.LineText(p.Line)
		_, size := utf8.DecodeLastRuneInString(line[:p.Column])
		return Point{Line: p.Line, Column: p.Column - size}, true
	}
	if p.Line > 0 {
		return Point{Line: p.Line - 1, Column: d.buf.LineLen(p.Line - 1)}, true
	}
	return Point{}, false
}

// Save writes the document to its path.
func (d *Document) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(d.path, []byte(d.buf.Text()), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", d.path, err)
	}
	d.modified = false
	return nil
}
