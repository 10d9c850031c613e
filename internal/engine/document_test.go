package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/wordsmith/internal/engine/buffer"
)

func typeString(t *testing.T, d *Document, s string) {
	t.Helper()
	for _, r := range s {
		var err error
		if r == '\n' {
			err = d.InsertText("\n")
		} else {
			err = d.InsertRune(r)
		}
		if err != nil {
			t.Fatalf("typing %q: %v", r, err)
		}
	}
}

func TestNewDocument(t *testing.T) {
	d := New(WithContent("hello\nworld"))

	if d.ID() == "" {
		t.Error("document should have an ID")
	}
	if d.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", d.LineCount())
	}
	if d.Cursor() != (Point{}) {
		t.Errorf("cursor should start at origin, got %s", d.Cursor())
	}
	if d.IsModified() {
		t.Error("new document should not be modified")
	}
	if New().ID() == d.ID() {
		t.Error("document IDs should be unique")
	}
}

func TestDocumentTyping(t *testing.T) {
	d := New()
	typeString(t, d, "ab\ncd")

	if d.Text() != "ab\ncd" {
		t.Errorf("unexpected text %q", d.Text())
	}
	if d.Cursor() != (Point{Line: 1, Column: 2}) {
		t.Errorf("unexpected cursor %s", d.Cursor())
	}
	if !d.IsModified() {
		t.Error("document should be modified after typing")
	}
}

func TestDocumentBackspace(t *testing.T) {
	d := New()
	typeString(t, d, "a§\nb")

	steps := []struct {
		text   string
		cursor Point
	}{
		{"a§\n", Point{Line: 1, Column: 0}},
		{"a§", Point{Line: 0, Column: 3}},
		{"a", Point{Line: 0, Column: 1}},
		{"", Point{}},
		{"", Point{}},
	}

	for i, step := range steps {
		if err := d.Backspace(); err != nil {
			t.Fatalf("step %d: backspace failed: %v", i, err)
		}
		if d.Text() != step.text || d.Cursor() != step.cursor {
			t.Errorf("step %d: got %q at %s, want %q at %s", i, d.Text(), d.Cursor(), step.text, step.cursor)
		}
	}
}

func TestDocumentMovement(t *testing.T) {
	d := New(WithContent("héllo\nab"))

	d.MoveRight()
	d.MoveRight()
	if d.Cursor() != (Point{Line: 0, Column: 3}) {
		t.Errorf("MoveRight over multi-byte rune: got %s", d.Cursor())
	}

	d.MoveDown()
	if d.Cursor() != (Point{Line: 1, Column: 2}) {
		t.Errorf("MoveDown should clamp column: got %s", d.Cursor())
	}

	d.MoveHome()
	d.MoveLeft()
	if d.Cursor() != (Point{Line: 0, Column: 6}) {
		t.Errorf("MoveLeft should wrap to previous line end: got %s", d.Cursor())
	}

	d.MoveRight()
	if d.Cursor() != (Point{Line: 1, Column: 0}) {
		t.Errorf("MoveRight should wrap to next line: got %s", d.Cursor())
	}

	d.MoveEnd()
	d.MoveUp()
	if d.Cursor() != (Point{Line: 0, Column: 1}) {
		t.Errorf("MoveUp should snap back to a rune boundary: got %s", d.Cursor())
	}
}

func TestDocumentWordAt(t *testing.T) {
	d := New(WithContent("say ;btw"))

	r, text, ok := d.WordAt(Point{Line: 0, Column: 8})
	if !ok {
		t.Fatal("expected a word")
	}
	if text != "btw" {
		t.Errorf("expected btw, got %q", text)
	}
	if r.Start != (Point{Line: 0, Column: 5}) || r.End != (Point{Line: 0, Column: 8}) {
		t.Errorf("unexpected range %s", r)
	}

	if _, _, ok := d.WordAt(Point{Line: 0, Column: 4}); ok {
		t.Error("position between space and ';' touches no word")
	}
}

func TestDocumentReplaceMovesCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor Point
		want   Point
	}{
		{"cursor before range", Point{Line: 0, Column: 1}, Point{Line: 0, Column: 1}},
		{"cursor at range end", Point{Line: 0, Column: 8}, Point{Line: 0, Column: 14}},
		{"cursor inside range", Point{Line: 0, Column: 6}, Point{Line: 0, Column: 14}},
		{"cursor after range on line", Point{Line: 0, Column: 10}, Point{Line: 0, Column: 16}},
		{"cursor on later line", Point{Line: 1, Column: 1}, Point{Line: 1, Column: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(WithContent("say ;btw ok\nxy"))
			d.SetCursor(tt.cursor)

			r := PointRange{Start: Point{Line: 0, Column: 4}, End: Point{Line: 0, Column: 8}}
			if err := d.Replace(r, "by the way"); err != nil {
				t.Fatalf("replace failed: %v", err)
			}
			if d.LineText(0) != "say by the way ok" {
				t.Errorf("unexpected line %q", d.LineText(0))
			}
			if d.Cursor() != tt.want {
				t.Errorf("cursor = %s, want %s", d.Cursor(), tt.want)
			}
		})
	}
}

func TestDocumentReplaceMultilineShiftsLaterLines(t *testing.T) {
	d := New(WithContent(";sig\nnext"))
	d.SetCursor(Point{Line: 1, Column: 2})

	r := PointRange{Start: Point{Line: 0, Column: 0}, End: Point{Line: 0, Column: 4}}
	if err := d.Replace(r, "Regards,\nMe"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if d.Cursor() != (Point{Line: 2, Column: 2}) {
		t.Errorf("cursor = %s, want (2:2)", d.Cursor())
	}
}

func TestDocumentReadOnly(t *testing.T) {
	d := New(WithContent("abc"), WithReadOnly())

	if err := d.InsertRune('x'); !errors.Is(err, buffer.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if d.IsModified() {
		t.Error("rejected edit must not mark the document modified")
	}
}

func TestDocumentOpenAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open of missing file failed: %v", err)
	}
	typeString(t, d, "hi")
	if err := d.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "hi" {
		t.Errorf("saved %q, want %q", data, "hi")
	}
	if d.IsModified() {
		t.Error("document should be clean after save")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.Text() != "hi" {
		t.Errorf("reopened text %q", reopened.Text())
	}

	if err := New().Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}
