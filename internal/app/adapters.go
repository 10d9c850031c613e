package app

import (
	"github.com/dshills/wordsmith/internal/engine"
	"github.com/dshills/wordsmith/internal/expand"
	"github.com/dshills/wordsmith/internal/renderer/backend"
)

// documentSurface adapts an engine.Document to expand.Surface.
// The document addresses columns in bytes; the expander in runes.
type documentSurface struct {
	doc *engine.Document
}

var _ expand.Surface = (*documentSurface)(nil)

func (s *documentSurface) Cursor() expand.Position {
	return s.toPosition(s.doc.Cursor())
}

func (s *documentSurface) WordAt(pos expand.Position) (expand.Span, bool) {
	r, text, ok := s.doc.WordAt(s.toPoint(pos))
	if !ok {
		return expand.Span{}, false
	}
	return expand.Span{
		From: s.toPosition(r.Start),
		To:   s.toPosition(r.End),
		Text: text,
	}, true
}

func (s *documentSurface) Replace(from, to expand.Position, text string) error {
	return s.doc.Replace(engine.PointRange{Start: s.toPoint(from), End: s.toPoint(to)}, text)
}

func (s *documentSurface) toPosition(p engine.Point) expand.Position {
	return expand.Position{Line: p.Line, Column: s.doc.Buffer().RuneColumn(p.Line, p.Column)}
}

func (s *documentSurface) toPoint(p expand.Position) engine.Point {
	return engine.Point{Line: p.Line, Column: s.doc.Buffer().ByteColumn(p.Line, p.Column)}
}

// documentView builds the drawable view of a document. The previous view
// supplies the scroll offsets.
func documentView(doc *engine.Document, prev backend.View, status string) backend.View {
	lines := make([]string, doc.LineCount())
	for i := range lines {
		lines[i] = doc.LineText(i)
	}
	cursor := doc.Cursor()

	return backend.View{
		Lines:      lines,
		CursorLine: cursor.Line,
		CursorCol:  doc.Buffer().RuneColumn(cursor.Line, cursor.Column),
		Status:     status,
		Top:        prev.Top,
		Left:       prev.Left,
	}
}
