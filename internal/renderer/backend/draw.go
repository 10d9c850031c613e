package backend

import "github.com/rivo/uniseg"

// View is what Draw puts on screen: document lines, a cursor in rune
// columns and a status line on the last row.
type View struct {
	Lines      []string
	CursorLine int
	CursorCol  int
	Status     string

	// Top and Left are the first visible line and display column.
	Top  int
	Left int
}

// Scroll adjusts Top and Left so the cursor is visible in a text area of
// the given size.
func (v *View) Scroll(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	if v.CursorLine < v.Top {
		v.Top = v.CursorLine
	}
	if v.CursorLine >= v.Top+height {
		v.Top = v.CursorLine - height + 1
	}

	col := v.cursorDisplayColumn()
	if col < v.Left {
		v.Left = col
	}
	if col >= v.Left+width {
		v.Left = col - width + 1
	}
}

func (v *View) cursorDisplayColumn() int {
	if v.CursorLine < 0 || v.CursorLine >= len(v.Lines) {
		return 0
	}
	col := 0
	for i, r := range []rune(v.Lines[v.CursorLine]) {
		if i >= v.CursorCol {
			break
		}
		col += runeWidth(r)
	}
	return col
}

// Draw renders v on b and shows the result. The status line takes the last
// row; the remaining rows show document lines starting at v.Top.
func Draw(b Backend, v *View) {
	width, height := b.Size()
	textHeight := height - 1
	if textHeight < 0 {
		textHeight = 0
	}
	v.Scroll(width, textHeight)

	b.Clear()
	for row := 0; row < textHeight; row++ {
		line := v.Top + row
		if line >= len(v.Lines) {
			b.SetCell(0, row, '~', AttrDim)
			continue
		}
		drawText(b, row, v.Lines[line], v.Left, width, AttrNone)
	}

	if height > 0 {
		for x := 0; x < width; x++ {
			b.SetCell(x, height-1, ' ', AttrReverse)
		}
		drawText(b, height-1, v.Status, 0, width, AttrReverse)
	}

	if textHeight > 0 && v.CursorLine >= v.Top && v.CursorLine < v.Top+textHeight {
		b.ShowCursor(v.cursorDisplayColumn()-v.Left, v.CursorLine-v.Top)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// drawText draws s on row, skipping the first left display columns.
func drawText(b Backend, row int, s string, left, width int, attr Attr) {
	col := 0
	for _, r := range s {
		w := runeWidth(r)
		x := col - left
		col += w
		if x < 0 {
			continue
		}
		if x+w > width {
			return
		}
		if r == '\t' {
			r = ' '
		}
		b.SetCell(x, row, r, attr)
	}
}

// runeWidth returns the display width of r; control characters and
// zero-width runes occupy one cell so the cursor stays addressable.
func runeWidth(r rune) int {
	if r < ' ' {
		return 1
	}
	if w := uniseg.StringWidth(string(r)); w > 0 {
		return w
	}
	return 1
}
