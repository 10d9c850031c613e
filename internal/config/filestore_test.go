package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordsmith/internal/config/loader"
)

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))
	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestFileStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			store := NewFileStore(path)

			s := Defaults()
			s.Start = "#"
			s.Shortcuts = map[string]string{"ty": "thank you", "blank": ""}
			s.Count = 7
			s.Scripts = []string{"extra.lua"}
			require.NoError(t, store.Save(s))

			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestFileStore_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	store := NewFileStore(path)

	s := Defaults()
	s.End = ""
	err := store.Save(s)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid settings must not be written")
}

func TestFileStore_SaveCount(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))

	s := Defaults()
	s.Shortcuts = map[string]string{"x": "y"}
	require.NoError(t, store.Save(s))
	require.NoError(t, store.SaveCount(12))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 12, got.Count)
	assert.Equal(t, map[string]string{"x": "y"}, got.Shortcuts)

	assert.ErrorIs(t, store.SaveCount(-1), ErrValidationFailed)
}

func TestFileStore_LoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("count = 4\n"), 0o644))

	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 4, got.Count)
	assert.Equal(t, DefaultStart, got.Start)
	assert.Len(t, got.Shortcuts, len(DefaultShortcuts))
}

func TestFileStore_LoadErrors(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		require.NoError(t, os.WriteFile(path, []byte("start = \n"), 0o644))

		_, err := NewFileStore(path).Load()
		var perr *loader.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, path, perr.Path)
	})

	t.Run("invalid settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("start: \"ab\"\n"), 0o644))

		_, err := NewFileStore(path).Load()
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestFileStore_Closed(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, store.Close())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, store.Save(Defaults()), ErrStoreClosed)
	assert.ErrorIs(t, store.SaveCount(1), ErrStoreClosed)
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	fs, err := OpenStore(BackendFile, filepath.Join(dir, "s.toml"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fs)
	require.NoError(t, fs.Close())

	ss, err := OpenStore(BackendSQLite, filepath.Join(dir, "s.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, ss)
	require.NoError(t, ss.Close())

	_, err = OpenStore(Backend("bogus"), filepath.Join(dir, "x"))
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	p, err := DefaultPath(BackendFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SettingsFileName), p)

	p, err = DefaultPath(BackendSQLite)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DatabaseFileName), p)
}
