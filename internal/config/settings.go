package config

import (
	"maps"
	"strings"

	"github.com/dshills/wordsmith/internal/input/key"
)

// Default values.
const (
	DefaultStart    = ";"
	DefaultEnd      = "<Space>"
	DefaultLogLevel = "info"
)

// DefaultShortcuts is the shortcut table written on first run.
var DefaultShortcuts = map[string]string{
	"btw":   "by the way",
	"omw":   "on my way",
	"afaik": "as far as I know",
	"imo":   "in my opinion",
	"tbh":   "to be honest",
	"ty":    "thank you",
	"brb":   "be right back",
	"fyi":   "for your information",
}

// Settings is the persisted configuration.
type Settings struct {
	// Start is the start boundary key, e.g. ";" or "<Space>".
	Start string `toml:"start" yaml:"start"`

	// End is the end boundary key. Defaults to a space.
	End string `toml:"end" yaml:"end"`

	// Shortcuts maps shortcut names to expansions.
	Shortcuts map[string]string `toml:"shortcuts" yaml:"shortcuts"`

	// Count is the number of expansions performed so far.
	Count int `toml:"count" yaml:"count"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level,omitempty" yaml:"log_level,omitempty"`

	// Scripts lists Lua files defining extra shortcuts.
	Scripts []string `toml:"scripts,omitempty" yaml:"scripts,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Start:     DefaultStart,
		End:       DefaultEnd,
		Shortcuts: maps.Clone(DefaultShortcuts),
		LogLevel:  DefaultLogLevel,
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	c := s
	c.Shortcuts = maps.Clone(s.Shortcuts)
	if s.Scripts != nil {
		c.Scripts = append([]string(nil), s.Scripts...)
	}
	return c
}

// withDefaults fills unset fields from Defaults. An empty shortcut map
// that was explicitly written stays empty; only a missing one is filled.
func (s Settings) withDefaults() Settings {
	d := Defaults()
	if s.Start == "" {
		s.Start = d.Start
	}
	if s.End == "" {
		s.End = d.End
	}
	if s.Shortcuts == nil {
		s.Shortcuts = d.Shortcuts
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	return s
}

// Boundaries returns the parsed start and end characters.
// Settings must have passed Validate.
func (s Settings) Boundaries() (start, end rune) {
	start, _ = key.ParseChar(s.Start)
	end, _ = key.ParseChar(s.End)
	return start, end
}

// Validate checks the settings.
func (s Settings) Validate() error {
	start, err := validateBoundary("start", s.Start)
	if err != nil {
		return err
	}
	end, err := validateBoundary("end", s.End)
	if err != nil {
		return err
	}
	for name := range s.Shortcuts {
		if err := validateShortcut(name, start, end); err != nil {
			return err
		}
	}
	if s.Count < 0 {
		return &ValidationError{Path: "count", Message: "must not be negative", Value: s.Count, Code: CodeNegativeCount}
	}
	return nil
}

func validateBoundary(path, value string) (rune, error) {
	if value == "" {
		return 0, &ValidationError{Path: path, Message: "field cannot be empty", Value: value, Code: CodeEmpty}
	}
	r, err := key.ParseChar(value)
	if err != nil {
		return 0, &ValidationError{Path: path, Message: "must be a single character or key name such as <Space>", Value: value, Code: CodeInvalidBoundary}
	}
	return r, nil
}

// ValidateShortcut checks a shortcut name against the boundaries of s.
func (s Settings) ValidateShortcut(name string) error {
	start, end := s.Boundaries()
	return validateShortcut(name, start, end)
}

func validateShortcut(name string, start, end rune) error {
	if name == "" {
		return &ValidationError{Path: "shortcuts", Message: "shortcut name cannot be empty", Value: name, Code: CodeEmptyShortcut}
	}
	if strings.ContainsRune(name, start) || strings.ContainsRune(name, end) {
		return &ValidationError{Path: "shortcuts." + name, Message: "shortcut name cannot contain a boundary character", Value: name, Code: CodeShortcutBoundary}
	}
	return nil
}
