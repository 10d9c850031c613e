package expand

import (
	"maps"
	"slices"
	"sync"
)

// Source resolves a shortcut to its expansion.
type Source interface {
	// Lookup returns the expansion for shortcut. Matching is exact and
	// case-sensitive.
	Lookup(shortcut string) (string, bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(shortcut string) (string, bool)

// Lookup implements Source.
func (f SourceFunc) Lookup(shortcut string) (string, bool) {
	return f(shortcut)
}

// Chain consults sources in order and returns the first hit.
type Chain []Source

// Lookup implements Source.
func (c Chain) Lookup(shortcut string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(shortcut); ok {
			return v, true
		}
	}
	return "", false
}

// Table maps shortcuts to expansions. It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewTable creates a table holding a copy of entries.
func NewTable(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	maps.Copy(t.entries, entries)
	return t
}

// Lookup implements Source.
func (t *Table) Lookup(shortcut string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[shortcut]
	return v, ok
}

// Set adds or overwrites a shortcut.
func (t *Table) Set(shortcut, expansion string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[shortcut] = expansion
}

// Delete removes a shortcut. It reports whether the shortcut existed.
func (t *Table) Delete(shortcut string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[shortcut]
	delete(t.entries, shortcut)
	return ok
}

// Replace swaps the whole content of the table.
func (t *Table) Replace(entries map[string]string) {
	next := make(map[string]string, len(entries))
	maps.Copy(next, entries)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = next
}

// Snapshot returns a copy of the table content.
func (t *Table) Snapshot() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.entries)
}

// Keys returns the shortcuts in sorted order.
func (t *Table) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.entries))
}

// Len returns the number of shortcuts.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
