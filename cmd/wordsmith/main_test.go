package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordsmith/internal/config"
)

// execute runs the CLI with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func settingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), config.SettingsFileName)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wordsmith "+version)
}

func TestInit(t *testing.T) {
	path := settingsPath(t)

	out, err := execute(t, "", "--config", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := config.NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults().Shortcuts, loaded.Shortcuts)
}

func TestShortcuts_AddListRemove(t *testing.T) {
	path := settingsPath(t)

	out, err := execute(t, "", "--config", path, "shortcuts", "add", "addr", "221B Baker Street")
	require.NoError(t, err)
	assert.Equal(t, "Added addr\n", out)

	out, err = execute(t, "", "--config", path, "shortcuts", "add", "addr", "10 Downing Street")
	require.NoError(t, err)
	assert.Equal(t, "Replaced addr\n", out)

	out, err = execute(t, "", "--config", path, "shortcuts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"10 Downing Street"`)
	assert.Contains(t, out, "btw")

	out, err = execute(t, "", "--config", path, "shortcuts", "remove", "addr")
	require.NoError(t, err)
	assert.Equal(t, "Removed addr\n", out)

	_, err = execute(t, "", "--config", path, "shortcuts", "rm", "addr")
	assert.ErrorContains(t, err, `no shortcut named "addr"`)
}

func TestShortcuts_AddRejectsBoundaryInName(t *testing.T) {
	path := settingsPath(t)

	_, err := execute(t, "", "--config", path, "shortcuts", "add", "a;b", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrValidationFailed)
}

func TestShortcuts_ImportExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)
	input := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"sig": "Kind regards", "btw": "BY THE WAY"}`), 0o644))

	out, err := execute(t, "", "--config", path, "shortcuts", "import", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 shortcuts")

	loaded, err := config.NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "BY THE WAY", loaded.Shortcuts["btw"])
	assert.Equal(t, "on my way", loaded.Shortcuts["omw"])

	out, err = execute(t, `{"only": "this"}`, "--config", path, "shortcuts", "import", "--replace", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 total)")

	out, err = execute(t, "", "--config", path, "shortcuts", "export")
	require.NoError(t, err)
	assert.JSONEq(t, `{"only": "this"}`, out)

	exported := filepath.Join(dir, "out.json")
	_, err = execute(t, "", "--config", path, "shortcuts", "export", exported)
	require.NoError(t, err)
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.JSONEq(t, `{"only": "this"}`, string(data))
}

func TestShortcuts_ImportInvalid(t *testing.T) {
	path := settingsPath(t)

	_, err := execute(t, `["not", "an", "object"]`, "--config", path, "shortcuts", "import", "-")
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "settings must not be written on a failed import")
}

func TestCount_File(t *testing.T) {
	path := settingsPath(t)
	store := config.NewFileStore(path)
	require.NoError(t, store.Save(config.Defaults()))
	require.NoError(t, store.SaveCount(7))

	out, err := execute(t, "", "--config", path, "count")
	require.NoError(t, err)
	assert.Equal(t, "Words Autocompleted: 7\n", out)

	_, err = execute(t, "", "--config", path, "count", "--history", "3")
	assert.ErrorContains(t, err, "keeps no history")

	out, err = execute(t, "", "--config", path, "count", "reset")
	require.NoError(t, err)
	assert.Equal(t, "Words Autocompleted: 0\n", out)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Zero(t, loaded.Count)
}

func TestCount_SQLiteHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DatabaseFileName)
	store, err := config.OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(config.Defaults()))
	require.NoError(t, store.SaveCount(2))
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.RecordExpansion("btw", at))
	require.NoError(t, store.RecordExpansion("omw", at.Add(time.Minute)))
	require.NoError(t, store.Close())

	t.Setenv("WORDSMITH_BACKEND", "sqlite")

	out, err := execute(t, "", "--config", path, "count", "--history", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Words Autocompleted: 2", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "omw"))
	assert.True(t, strings.HasSuffix(lines[2], "btw"))

	_, err = execute(t, "", "--config", path, "count", "reset")
	require.NoError(t, err)

	store, err = config.OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()
	history, err := store.Expansions(0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUnknownBackend(t *testing.T) {
	_, err := execute(t, "", "--backend", "etcd", "--config", settingsPath(t), "count")
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}
