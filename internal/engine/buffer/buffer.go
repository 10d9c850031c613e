package buffer

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Buffer is a thread-safe text buffer stored as a slice of lines.
// Line terminators are not stored; lines are joined with "\n".
type Buffer struct {
	mu       sync.RWMutex
	lines    []string
	revision RevisionID
	readOnly bool
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithReadOnly makes every edit fail with ErrReadOnly.
func WithReadOnly() Option {
	return func(b *Buffer) {
		b.readOnly = true
	}
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	return NewBufferFromString("", opts...)
}

// NewBufferFromString creates a buffer initialized with the given text.
// CRLF and CR line endings are normalized to LF.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := &Buffer{
		lines:    splitLines(normalizeLineEndings(s)),
		revision: NewRevisionID(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromReader creates a buffer initialized from a reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading buffer content: %w", err)
	}
	return NewBufferFromString(string(data), opts...), nil
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// Text returns the entire buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a line, or "" if the line does not exist.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the byte length of a line, or 0 if it does not exist.
func (b *Buffer) LineLen(line int) int {
	return len(b.LineText(line))
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// IsReadOnly reports whether edits are rejected.
func (b *Buffer) IsReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readOnly
}

// SetReadOnly toggles edit rejection.
func (b *Buffer) SetReadOnly(readOnly bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readOnly = readOnly
}

// RevisionID returns the current revision.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// ValidPoint reports whether p addresses a rune boundary inside the buffer.
func (b *Buffer) ValidPoint(p Point) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.validPointLocked(p)
}

func (b *Buffer) validPointLocked(p Point) bool {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return false
	}
	line := b.lines[p.Line]
	if p.Column < 0 || p.Column > len(line) {
		return false
	}
	return p.Column == len(line) || utf8.RuneStart(line[p.Column])
}

// ClampPoint returns the nearest valid point to p.
func (b *Buffer) ClampPoint(p Point) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p.Line < 0 {
		return Point{}
	}
	if p.Line >= len(b.lines) {
		last := len(b.lines) - 1
		return Point{Line: last, Column: len(b.lines[last])}
	}
	line := b.lines[p.Line]
	col := p.Column
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	for col > 0 && col < len(line) && !utf8.RuneStart(line[col]) {
		col--
	}
	return Point{Line: p.Line, Column: col}
}

// TextRange returns the text within r.
func (b *Buffer) TextRange(r PointRange) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRangeLocked(r); err != nil {
		return "", err
	}
	return b.textRangeLocked(r), nil
}

func (b *Buffer) textRangeLocked(r PointRange) string {
	if r.IsSingleLine() {
		return b.lines[r.Start.Line][r.Start.Column:r.End.Column]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[r.Start.Line][r.Start.Column:])
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i])
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[r.End.Line][:r.End.Column])
	return sb.String()
}

func (b *Buffer) checkRangeLocked(r PointRange) error {
	if !b.validPointLocked(r.Start) {
		return fmt.Errorf("%w: start %s", ErrPointOutOfRange, r.Start)
	}
	if !b.validPointLocked(r.End) {
		return fmt.Errorf("%w: end %s", ErrPointOutOfRange, r.End)
	}
	if !r.IsValid() {
		return fmt.Errorf("%w: %s", ErrRangeInvalid, r)
	}
	return nil
}

// Insert inserts text at p and returns the point just after the inserted text.
func (b *Buffer) Insert(p Point, text string) (Point, error) {
	return b.Replace(PointRange{Start: p, End: p}, text)
}

// Delete removes the text within r.
func (b *Buffer) Delete(r PointRange) error {
	_, err := b.Replace(r, "")
	return err
}

// Replace replaces the text within r with text in a single edit and
// returns the point just after the inserted text.
func (b *Buffer) Replace(r PointRange, text string) (Point, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.readOnly {
		return Point{}, ErrReadOnly
	}
	if err := b.checkRangeLocked(r); err != nil {
		return Point{}, err
	}

	prefix := b.lines[r.Start.Line][:r.Start.Column]
	suffix := b.lines[r.End.Line][r.End.Column:]
	inserted := splitLines(normalizeLineEndings(text))

	replacement := make([]string, len(inserted))
	copy(replacement, inserted)
	replacement[0] = prefix + replacement[0]
	last := len(replacement) - 1
	end := Point{Line: r.Start.Line + last, Column: len(replacement[last])}
	replacement[last] += suffix

	lines := make([]string, 0, len(b.lines)-(r.End.Line-r.Start.Line)+last)
	lines = append(lines, b.lines[:r.Start.Line]...)
	lines = append(lines, replacement...)
	lines = append(lines, b.lines[r.End.Line+1:]...)
	b.lines = lines
	b.revision = NewRevisionID()

	return end, nil
}
