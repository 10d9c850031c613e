package key

import (
	"errors"
	"testing"
)

func TestParseSingleCharacter(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
		wantMod  Modifier
	}{
		{"a", 'a', ModNone},
		{"A", 'A', ModShift},
		{"1", '1', ModNone},
		{";", ';', ModNone},
		{" ", ' ', ModNone},
		{"<", '<', ModNone},
		{"+", '+', ModNone},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != KeyRune {
			t.Errorf("Parse(%q) key = %v, want KeyRune", tt.spec, event.Key)
		}
		if event.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, event.Rune, tt.wantRune)
		}
		if event.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, event.Modifiers, tt.wantMod)
		}
	}
}

func TestParseSpecialKeys(t *testing.T) {
	tests := []struct {
		spec    string
		wantKey Key
	}{
		{"Enter", KeyEnter},
		{"enter", KeyEnter},
		{"Escape", KeyEscape},
		{"Tab", KeyTab},
		{"Backspace", KeyBackspace},
		{"<CR>", KeyEnter},
		{"<Esc>", KeyEscape},
		{"<BS>", KeyBackspace},
		{"Left", KeyLeft},
		{"PageDown", KeyPageDown},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, event.Key, tt.wantKey)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
		wantMod  Modifier
	}{
		{"Ctrl+S", 's', ModCtrl},
		{"<C-q>", 'q', ModCtrl},
		{"<C-A-x>", 'x', ModCtrl | ModAlt},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Rune != tt.wantRune || event.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) = %#v, want rune %q mods %v", tt.spec, event, tt.wantRune, tt.wantMod)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptySpec", err)
	}

	for _, spec := range []string{"nope", "<X-a>", "Hyper+a", "   "} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSpec", spec, err)
		}
	}
}

func TestParseChar(t *testing.T) {
	tests := []struct {
		spec string
		want rune
	}{
		{";", ';'},
		{" ", ' '},
		{"<Space>", ' '},
		{"Space", ' '},
		{"<Tab>", '\t'},
		{"<CR>", '\n'},
		{"<lt>", '<'},
		{"Q", 'Q'},
		{"§", '§'},
	}

	for _, tt := range tests {
		got, err := ParseChar(tt.spec)
		if err != nil {
			t.Errorf("ParseChar(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChar(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestParseCharRejectsNonCharacters(t *testing.T) {
	for _, spec := range []string{"<Esc>", "<C-s>", "Left", "Ctrl+A"} {
		if _, err := ParseChar(spec); !errors.Is(err, ErrNotCharacter) {
			t.Errorf("ParseChar(%q) error = %v, want ErrNotCharacter", spec, err)
		}
	}
}

func TestFormatCharRoundTrip(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '<', ';', 'x', '#'} {
		got, err := ParseChar(FormatChar(r))
		if err != nil {
			t.Fatalf("ParseChar(FormatChar(%q)) error = %v", r, err)
		}
		if got != r {
			t.Errorf("round trip %q = %q", r, got)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("not-a-key")
}
