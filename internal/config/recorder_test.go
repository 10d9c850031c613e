package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordsmith/internal/expand"
)

type failingStore struct {
	FileStore
}

func (*failingStore) SaveCount(int) error { return errors.New("disk full") }

type captureLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *captureLogger) Debug(string, ...any) {}
func (l *captureLogger) Info(string, ...any)  {}
func (l *captureLogger) Warn(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(msg, args...))
}

func TestRecorder_FileStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))
	rec := NewRecorder(store, nil)

	for i := 1; i <= 5; i++ {
		rec.Record(expand.Expansion{Shortcut: "btw", Count: i, Time: time.Now()})
	}
	rec.Close()

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, got.Count)
}

func TestRecorder_History(t *testing.T) {
	store := openTestSQLite(t)
	rec := NewRecorder(store, nil)

	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec.Record(expand.Expansion{Shortcut: "btw", Count: 1, Time: at})
	rec.Record(expand.Expansion{Shortcut: "omw", Count: 2, Time: at.Add(time.Minute)})
	rec.Close()

	history, err := store.Expansions(0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "omw", history[0].Shortcut)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
}

func TestRecorder_LogsFailures(t *testing.T) {
	logger := &captureLogger{}
	rec := NewRecorder(&failingStore{}, logger)

	rec.Record(expand.Expansion{Shortcut: "btw", Count: 1})
	rec.Close()

	logger.mu.Lock()
	defer logger.mu.Unlock()
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "disk full")
}

func TestRecorder_RecordAfterClose(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))
	rec := NewRecorder(store, nil)
	rec.Close()
	rec.Close()

	rec.Record(expand.Expansion{Count: 3})

	got, err := store.Load()
	require.NoError(t, err)
	assert.Zero(t, got.Count)
}
