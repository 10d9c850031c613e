package buffer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WordAt returns the range of the word touching p on its line.
//
// Words follow Unicode word segmentation (UAX #29); a segment counts as a
// word when it starts with a letter, digit or underscore, so whitespace and
// punctuation never form words. A word touches p when p lies inside it or
// on either of its edges. When two words touch p, the one ending at p wins.
// Returns false if no word touches p.
func (b *Buffer) WordAt(p Point) (PointRange, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.validPointLocked(p) {
		return PointRange{}, false
	}

	line := b.lines[p.Line]
	rest := line
	state := -1
	offset := 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		start, end := offset, offset+len(word)
		offset = end

		if start > p.Column {
			break
		}
		if end >= p.Column && IsWordSegment(word) {
			return PointRange{
				Start: Point{Line: p.Line, Column: start},
				End:   Point{Line: p.Line, Column: end},
			}, true
		}
	}
	return PointRange{}, false
}

// IsWordSegment reports whether a word-break segment is a word rather than
// whitespace or punctuation.
func IsWordSegment(seg string) bool {
	r, _ := utf8.DecodeRuneInString(seg)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// RuneColumn converts a byte column on line to a rune column.
func (b *Buffer) RuneColumn(line, byteCol int) int {
	text := b.LineText(line)
	if byteCol > len(text) {
		byteCol = len(text)
	}
	if byteCol < 0 {
		return byteCol
	}
	return utf8.RuneCountInString(text[:byteCol])
}

// ByteColumn converts a rune column on line to a byte column.
// Negative rune columns are returned unchanged.
func (b *Buffer) ByteColumn(line, runeCol int) int {
	if runeCol < 0 {
		return runeCol
	}
	text := b.LineText(line)
	col := 0
	for i := range text {
		if col == runeCol {
			return i
		}
		col++
	}
	return len(text)
}
