package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestParseShortcutsJSON(t *testing.T) {
	got, err := ParseShortcutsJSON([]byte(`{"btw": "by the way", "empty": "", "a.b": "dotted"}`))
	if err != nil {
		t.Fatalf("ParseShortcutsJSON() error = %v", err)
	}
	want := map[string]string{"btw": "by the way", "empty": "", "a.b": "dotted"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("got[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestParseShortcutsJSON_DuplicateKeys(t *testing.T) {
	got, err := ParseShortcutsJSON([]byte(`{"x": "first", "x": "second"}`))
	if err != nil {
		t.Fatalf("ParseShortcutsJSON() error = %v", err)
	}
	if got["x"] != "second" {
		t.Errorf("got[x] = %q, want second", got["x"])
	}
}

func TestParseShortcutsJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"invalid", `{"x": `, ErrInvalidJSON},
		{"array", `["x"]`, ErrNotObject},
		{"number value", `{"x": 1}`, ErrNonStringValue},
		{"object value", `{"x": {"y": "z"}}`, ErrNonStringValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShortcutsJSON([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFormatShortcutsJSON(t *testing.T) {
	in := map[string]string{"omw": "on my way", "btw": "by the way", "a.b": "x", "q?": "\"quoted\""}

	data, err := FormatShortcutsJSON(in)
	if err != nil {
		t.Fatalf("FormatShortcutsJSON() error = %v", err)
	}

	text := string(data)
	if strings.Index(text, `"a.b"`) > strings.Index(text, `"btw"`) || strings.Index(text, `"btw"`) > strings.Index(text, `"omw"`) {
		t.Errorf("keys not sorted:\n%s", text)
	}
	if !strings.Contains(text, "\n    \"btw\": \"by the way\"") {
		t.Errorf("expected four-space indent:\n%s", text)
	}

	back, err := ParseShortcutsJSON(data)
	if err != nil {
		t.Fatalf("ParseShortcutsJSON(output) error = %v", err)
	}
	for k, v := range in {
		if back[k] != v {
			t.Errorf("back[%q] = %q, want %q", k, back[k], v)
		}
	}
}

func TestFormatShortcutsJSON_Empty(t *testing.T) {
	data, err := FormatShortcutsJSON(nil)
	if err != nil {
		t.Fatalf("FormatShortcutsJSON() error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("got %q, want {}", data)
	}
}
