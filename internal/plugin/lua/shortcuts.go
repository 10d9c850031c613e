package lua

import (
	"fmt"
	"slices"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Logger receives script errors raised during lookup.
type Logger interface {
	Warn(msg string, args ...any)
}

// Scripts holds shortcuts registered by Lua scripts.
// It implements expand.Source.
type Scripts struct {
	state  *State
	logger Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]lua.LValue
}

// ScriptsOption configures Scripts.
type ScriptsOption func(*Scripts)

// WithLogger sets the logger for errors raised by shortcut functions.
func WithLogger(l Logger) ScriptsOption {
	return func(s *Scripts) {
		s.logger = l
	}
}

// WithClock sets the time source used by the date function.
func WithClock(now func() time.Time) ScriptsOption {
	return func(s *Scripts) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScripts creates an empty script host.
func NewScripts(opts ...ScriptsOption) (*Scripts, error) {
	return NewScriptsWithState(nil, opts...)
}

// NewScriptsWithState creates a script host on an existing state. A nil
// state creates one with default options.
func NewScriptsWithState(state *State, opts ...ScriptsOption) (*Scripts, error) {
	if state == nil {
		var err error
		if state, err = NewState(); err != nil {
			return nil, err
		}
	}
	s := &Scripts{
		state:   state,
		now:     time.Now,
		entries: make(map[string]lua.LValue),
	}
	for _, opt := range opts {
		opt(s)
	}

	state.RegisterFunc("shortcut", s.luaShortcut)
	state.RegisterFunc("shortcuts", s.luaShortcuts)
	state.RegisterFunc("date", s.luaDate)
	return s, nil
}

// LoadFile runs a script file.
func (s *Scripts) LoadFile(path string) error {
	if err := s.state.DoFile(path); err != nil {
		return fmt.Errorf("loading script %s: %w", path, err)
	}
	return nil
}

// LoadString runs script source.
func (s *Scripts) LoadString(code string) error {
	return s.state.DoString(code)
}

// Lookup resolves name. Function values are called with the name; a
// function that fails is logged and treated as a miss.
func (s *Scripts) Lookup(name string) (string, bool) {
	s.mu.RLock()
	v, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	switch v := v.(type) {
	case lua.LString:
		return string(v), true
	case *lua.LFunction:
		out, err := s.state.CallString(v, name)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("shortcut %q: %v", name, err)
			}
			return "", false
		}
		return out, true
	default:
		return "", false
	}
}

// Names returns the registered shortcut names, sorted.
func (s *Scripts) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered shortcuts.
func (s *Scripts) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close releases the Lua state.
func (s *Scripts) Close() error {
	return s.state.Close()
}

func (s *Scripts) set(L *lua.LState, name string, v lua.LValue) {
	if name == "" {
		L.ArgError(1, "shortcut name cannot be empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch v := v.(type) {
	case *lua.LNilType:
		delete(s.entries, name)
	case lua.LString, *lua.LFunction:
		s.entries[name] = v
	case lua.LNumber:
		s.entries[name] = lua.LString(v.String())
	default:
		L.ArgError(2, "expansion must be a string or function")
	}
}

// luaShortcut implements shortcut(name, value).
func (s *Scripts) luaShortcut(L *lua.LState) int {
	name := L.CheckString(1)
	s.set(L, name, L.Get(2))
	return 0
}

// luaShortcuts implements shortcuts(table).
func (s *Scripts) luaShortcuts(L *lua.LState) int {
	tbl := L.CheckTable(1)
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			s.set(L, string(ks), v)
		}
	})
	return 0
}

// luaDate implements date([layout]) using Go time layouts.
func (s *Scripts) luaDate(L *lua.LState) int {
	layout := L.OptString(1, time.DateOnly)
	L.Push(lua.LString(s.now().Format(layout)))
	return 1
}
