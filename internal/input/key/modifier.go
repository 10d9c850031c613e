package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// modifierNames lists the modifiers in display order with their long and
// short names.
var modifierNames = []struct {
	mod         Modifier
	long, short string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModMeta, "Meta", "M"},
	{ModShift, "Shift", "S"},
}

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns the long names joined by "+", like "Ctrl+Alt".
func (m Modifier) String() string {
	return strings.Join(m.names(false), "+")
}

func (m Modifier) names(short bool) []string {
	var parts []string
	for _, n := range modifierNames {
		if !m.Has(n.mod) {
			continue
		}
		if short {
			parts = append(parts, n.short)
		} else {
			parts = append(parts, n.long)
		}
	}
	return parts
}

// ModifierFromName returns the modifier for a name such as "ctrl", "C" or
// "option". Unknown names yield ModNone.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "c", "ctrl", "control":
		return ModCtrl
	case "a", "alt", "option":
		return ModAlt
	case "m", "meta", "cmd", "d":
		return ModMeta
	case "s", "shift":
		return ModShift
	}
	return ModNone
}
