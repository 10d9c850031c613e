package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// File names inside the configuration directory.
const (
	AppDirName       = "wordsmith"
	SettingsFileName = "settings.toml"
	DatabaseFileName = "wordsmith.db"
)

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "WORDSMITH_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultDir returns the platform-specific configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/wordsmith (fallback ~/.config/wordsmith)
// macOS:   ~/Library/Application Support/wordsmith
// Windows: %APPDATA%/wordsmith
//
// WORDSMITH_CONFIG_DIR takes precedence on every platform.
func DefaultDir() (string, error) {
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// DefaultPath returns the default store path for a backend.
func DefaultPath(backend Backend) (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	if backend == BackendSQLite {
		return filepath.Join(dir, DatabaseFileName), nil
	}
	return filepath.Join(dir, SettingsFileName), nil
}
