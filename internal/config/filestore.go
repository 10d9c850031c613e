package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/wordsmith/internal/config/loader"
)

// FileStore keeps settings in a single TOML or YAML file.
// The format follows the file extension.
type FileStore struct {
	mu     sync.Mutex
	path   string
	fs     loader.FileSystem
	closed bool
}

// NewFileStore returns a store for the file at path. The file is created
// on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, fs: loader.DefaultFS()}
}

// Path returns the settings file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the settings file. A missing file yields Defaults.
func (f *FileStore) Load() (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return Settings{}, ErrStoreClosed
	}
	return f.loadLocked()
}

func (f *FileStore) loadLocked() (Settings, error) {
	var s Settings
	found, err := loader.LoadFile(f.fs, f.path, &s)
	if err != nil {
		return Settings{}, err
	}
	if !found {
		return Defaults(), nil
	}
	s = s.withDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", f.path, err)
	}
	return s, nil
}

// Save validates and writes s.
func (f *FileStore) Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrStoreClosed
	}
	return f.writeLocked(s)
}

// SaveCount rewrites the file with a new count.
func (f *FileStore) SaveCount(count int) error {
	if count < 0 {
		return &ValidationError{Path: "count", Message: "must not be negative", Value: count, Code: CodeNegativeCount}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrStoreClosed
	}
	s, err := f.loadLocked()
	if err != nil {
		return err
	}
	s.Count = count
	return f.writeLocked(s)
}

// Close marks the store closed.
func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// writeLocked writes through a temporary file and renames it into place.
func (f *FileStore) writeLocked(s Settings) error {
	data, err := loader.Marshal(loader.FormatFromPath(f.path), s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}
