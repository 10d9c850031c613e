package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Errors returned by JSON shortcut import.
var (
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrNotObject      = errors.New("shortcut map must be a JSON object")
	ErrNonStringValue = errors.New("shortcut expansions must be strings")
)

// ParseShortcutsJSON parses a JSON object mapping shortcuts to expansions.
// Duplicate keys follow last-write-wins.
func ParseShortcutsJSON(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}

	shortcuts := make(map[string]string)
	var err error
	root.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			err = fmt.Errorf("%w: %q is %s", ErrNonStringValue, k.String(), v.Type)
			return false
		}
		shortcuts[k.String()] = v.String()
		return true
	})
	if err != nil {
		return nil, err
	}
	return shortcuts, nil
}

// FormatShortcutsJSON renders a shortcut map as an indented JSON object
// with sorted keys.
func FormatShortcutsJSON(shortcuts map[string]string) ([]byte, error) {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := []byte("{}")
	for _, name := range names {
		var err error
		doc, err = sjson.SetBytes(doc, escapePath(name), shortcuts[name])
		if err != nil {
			return nil, fmt.Errorf("encoding shortcut %q: %w", name, err)
		}
	}
	return pretty.PrettyOptions(doc, &pretty.Options{Indent: "    ", SortKeys: true}), nil
}

// escapePath escapes sjson path syntax so name is used as a literal key.
func escapePath(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
