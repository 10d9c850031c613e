package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wordsmith/internal/input/key"
)

// specialKeys maps tcell keys to named keys.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey converts a tcell key event. Control letters become runes with
// ModCtrl so that Ctrl+Q arrives as C-q.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	ts := e.When()
	if ts.IsZero() {
		ts = time.Now()
	}

	k := e.Key()
	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		if r == ' ' && mods == key.ModNone {
			return key.Event{Key: key.KeySpace, Timestamp: ts}, true
		}
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods, Timestamp: ts}, true

	case k == tcell.KeyCtrlSpace:
		return key.Event{Key: key.KeySpace, Modifiers: mods | key.ModCtrl, Timestamp: ts}, true
	}

	if named, ok := specialKeys[k]; ok {
		// tcell reports Backspace, Tab and Enter as Ctrl+H/I/M on some
		// terminals; the modifier is dropped for these.
		if named == key.KeyBackspace || named == key.KeyTab || named == key.KeyEnter {
			mods &^= key.ModCtrl
		}
		return key.Event{Key: named, Modifiers: mods, Timestamp: ts}, true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods | key.ModCtrl, Timestamp: ts}, true
	}

	return key.Event{}, false
}

// convertMod converts tcell modifier mask to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}
