package config

import (
	"fmt"
	"strings"
	"time"
)

// Backend names a Store implementation.
type Backend string

const (
	// BackendFile stores settings in a TOML or YAML file.
	BackendFile Backend = "file"
	// BackendSQLite stores settings and expansion history in SQLite.
	BackendSQLite Backend = "sqlite"
)

// ParseBackend parses a backend name. The empty string selects BackendFile.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(BackendFile):
		return BackendFile, nil
	case string(BackendSQLite):
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Store persists Settings.
type Store interface {
	// Load returns the stored settings, or Defaults when nothing is stored.
	Load() (Settings, error)

	// Save validates and writes s.
	Save(s Settings) error

	// SaveCount writes only the replacement count.
	SaveCount(count int) error

	// Path returns the location of the store.
	Path() string

	// Close releases resources held by the store.
	Close() error
}

// Expansion is a single recorded expansion.
type Expansion struct {
	ID       string
	Shortcut string
	Time     time.Time
}

// HistoryStore is implemented by stores that keep an expansion history.
type HistoryStore interface {
	Store

	// RecordExpansion appends an expansion to the history.
	RecordExpansion(shortcut string, at time.Time) error

	// Expansions returns the most recent expansions, newest first.
	// A limit of zero or less returns all of them.
	Expansions(limit int) ([]Expansion, error)

	// ClearExpansions deletes the history.
	ClearExpansions() error
}

// OpenStore opens the store for backend at path. An empty path selects
// DefaultPath.
func OpenStore(backend Backend, path string) (Store, error) {
	if path == "" {
		p, err := DefaultPath(backend)
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
		path = p
	}
	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return OpenSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
