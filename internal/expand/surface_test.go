package expand

import (
	"errors"
	"unicode"
)

var errRejected = errors.New("rejected")

// fakeSurface is a single-line-per-entry surface with simple word rules:
// runs of letters, digits and underscores.
type fakeSurface struct {
	lines    [][]rune
	cursor   Position
	reject   bool
	replaces int
}

func newFakeSurface(text string) *fakeSurface {
	return &fakeSurface{lines: [][]rune{[]rune(text)}}
}

func (f *fakeSurface) Cursor() Position { return f.cursor }

func (f *fakeSurface) text() string { return string(f.lines[f.cursor.Line]) }

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (f *fakeSurface) WordAt(pos Position) (Span, bool) {
	line := f.lines[pos.Line]
	start := pos.Column
	for start > 0 && isWord(line[start-1]) {
		start--
	}
	end := pos.Column
	if start == end {
		for end < len(line) && isWord(line[end]) {
			end++
		}
	}
	if start == end {
		return Span{}, false
	}
	return Span{
		From: Position{Line: pos.Line, Column: start},
		To:   Position{Line: pos.Line, Column: end},
		Text: string(line[start:end]),
	}, true
}

func (f *fakeSurface) Replace(from, to Position, text string) error {
	if f.reject {
		return errRejected
	}
	if from.Column < 0 {
		return errors.New("negative column")
	}
	line := f.lines[from.Line]
	next := append([]rune{}, line[:from.Column]...)
	next = append(next, []rune(text)...)
	next = append(next, line[to.Column:]...)
	f.lines[from.Line] = next
	if f.cursor.Column >= to.Column {
		f.cursor.Column += len([]rune(text)) - (to.Column - from.Column)
	}
	f.replaces++
	return nil
}

func (f *fakeSurface) insert(r rune) {
	line := f.lines[f.cursor.Line]
	next := append([]rune{}, line[:f.cursor.Column]...)
	next = append(next, r)
	next = append(next, line[f.cursor.Column:]...)
	f.lines[f.cursor.Line] = next
	f.cursor.Column++
}

// typeInto feeds each character to the expander and then inserts it,
// matching the order a host delivers key presses.
func typeInto(e *Expander, f *fakeSurface, s string) []Outcome {
	var outs []Outcome
	for _, r := range s {
		outs = append(outs, e.HandleChar(r))
		f.insert(r)
	}
	return outs
}
