// Package config provides settings loading and persistence for wordsmith.
//
// Settings hold the shortcut table, the start and end boundary characters,
// the persisted replacement count and a few ambient options. They are
// stored either in a TOML or YAML file (FileStore) or in a SQLite database
// (SQLiteStore); both implement Store.
//
// # Sub-packages
//
//   - loader: TOML/YAML codecs and JSON import/export of shortcut maps
//   - watcher: fsnotify-based live reload of the settings file
//
// # Basic Usage
//
//	store := config.NewFileStore(path)
//	settings, err := store.Load()
//	if err != nil {
//	    return err
//	}
//	start, end := settings.Boundaries()
//
// # Validation
//
// Validate rejects empty boundaries and shortcuts the expansion engine
// could never match. The engine itself trusts the settings it is given.
package config
