package config

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Keys in the settings table.
const (
	keyStart    = "start"
	keyEnd      = "end"
	keyCount    = "count"
	keyLogLevel = "log_level"
)

// timeFormat sorts lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore keeps settings and the expansion history in a SQLite database.
type SQLiteStore struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

// OpenSQLiteStore opens or creates the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection serializes writers and keeps :memory: databases shared.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{path: path, db: db}, nil
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Load reads the settings. An uninitialized database yields Defaults
// carrying any count already recorded.
func (s *SQLiteStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return Settings{}, ErrStoreClosed
	}

	kv, err := s.readSettings()
	if err != nil {
		return Settings{}, err
	}

	var st Settings
	st.Start = kv[keyStart]
	st.End = kv[keyEnd]
	st.LogLevel = kv[keyLogLevel]
	if v, ok := kv[keyCount]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("reading count: %w", err)
		}
		st.Count = n
	}

	if _, initialized := kv[keyStart]; initialized {
		if st.Shortcuts, err = s.readShortcuts(); err != nil {
			return Settings{}, err
		}
		if st.Scripts, err = s.readScripts(); err != nil {
			return Settings{}, err
		}
	}

	st = st.withDefaults()
	if err := st.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return st, nil
}

func (s *SQLiteStore) readSettings() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		kv[k] = v
	}
	return kv, rows.Err()
}

func (s *SQLiteStore) readShortcuts() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT name, expansion FROM shortcuts`)
	if err != nil {
		return nil, fmt.Errorf("reading shortcuts: %w", err)
	}
	defer rows.Close()

	shortcuts := make(map[string]string)
	for rows.Next() {
		var name, expansion string
		if err := rows.Scan(&name, &expansion); err != nil {
			return nil, fmt.Errorf("reading shortcuts: %w", err)
		}
		shortcuts[name] = expansion
	}
	return shortcuts, rows.Err()
}

func (s *SQLiteStore) readScripts() ([]string, error) {
	rows, err := s.db.Query(`SELECT path FROM scripts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("reading scripts: %w", err)
	}
	defer rows.Close()

	var scripts []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("reading scripts: %w", err)
		}
		scripts = append(scripts, path)
	}
	return scripts, rows.Err()
}

// Save validates and writes st in one transaction.
func (s *SQLiteStore) Save(st Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	kv := map[string]string{
		keyStart:    st.Start,
		keyEnd:      st.End,
		keyCount:    strconv.Itoa(st.Count),
		keyLogLevel: st.LogLevel,
	}
	for k, v := range kv {
		if err := putSetting(tx, k, v); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DELETE FROM shortcuts`); err != nil {
		return fmt.Errorf("clearing shortcuts: %w", err)
	}
	for name, expansion := range st.Shortcuts {
		if _, err := tx.Exec(`INSERT INTO shortcuts (name, expansion) VALUES (?, ?)`, name, expansion); err != nil {
			return fmt.Errorf("writing shortcut %q: %w", name, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM scripts`); err != nil {
		return fmt.Errorf("clearing scripts: %w", err)
	}
	for i, path := range st.Scripts {
		if _, err := tx.Exec(`INSERT INTO scripts (position, path) VALUES (?, ?)`, i, path); err != nil {
			return fmt.Errorf("writing script %q: %w", path, err)
		}
	}

	return tx.Commit()
}

// SaveCount writes only the count.
func (s *SQLiteStore) SaveCount(count int) error {
	if count < 0 {
		return &ValidationError{Path: "count", Message: "must not be negative", Value: count, Code: CodeNegativeCount}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrStoreClosed
	}
	return putSetting(s.db, keyCount, strconv.Itoa(count))
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func putSetting(db execer, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// RecordExpansion appends an expansion to the history.
func (s *SQLiteStore) RecordExpansion(shortcut string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrStoreClosed
	}
	_, err := s.db.Exec(
		`INSERT INTO expansions (expansion_id, shortcut, created_at) VALUES (?, ?, ?)`,
		uuid.New().String(), shortcut, at.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("recording expansion: %w", err)
	}
	return nil
}

// Expansions returns the most recent expansions, newest first.
func (s *SQLiteStore) Expansions(limit int) ([]Expansion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	query := `SELECT expansion_id, shortcut, created_at FROM expansions ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("reading expansions: %w", err)
	}
	defer rows.Close()

	var out []Expansion
	for rows.Next() {
		var e Expansion
		var created string
		if err := rows.Scan(&e.ID, &e.Shortcut, &created); err != nil {
			return nil, fmt.Errorf("reading expansions: %w", err)
		}
		if e.Time, err = time.Parse(timeFormat, created); err != nil {
			return nil, fmt.Errorf("parsing expansion time: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ClearExpansions deletes the expansion history.
func (s *SQLiteStore) ClearExpansions() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrStoreClosed
	}
	if _, err := s.db.Exec(`DELETE FROM expansions`); err != nil {
		return fmt.Errorf("clearing expansions: %w", err)
	}
	return nil
}

// Close closes the database. Close is idempotent.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}
