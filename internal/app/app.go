// Package app wires the expansion engine to a document and a terminal.
//
// Every key event is offered to the expander before it is applied to the
// document as typing. The start character of a shortcut is therefore
// already in the document when the shortcut is resolved, and the end
// character is inserted after the expansion.
package app

import (
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/wordsmith/internal/config"
	"github.com/dshills/wordsmith/internal/config/watcher"
	"github.com/dshills/wordsmith/internal/engine"
	"github.com/dshills/wordsmith/internal/expand"
	"github.com/dshills/wordsmith/internal/plugin/lua"
	"github.com/dshills/wordsmith/internal/renderer/backend"
)

// Options configures an App.
type Options struct {
	// Settings supplies boundaries, shortcuts, the initial count and
	// script paths. It must pass Validate.
	Settings config.Settings

	// Store persists the count after every expansion and is reloaded when
	// its file changes. Optional.
	Store config.Store

	// Document is the edited document. A new empty document is used when nil.
	Document *engine.Document

	// Backend is the terminal. Required by Run only.
	Backend backend.Backend

	// Logger receives diagnostics. NullLogger is used when nil.
	Logger *Logger

	// Watch reloads settings and scripts when their files change.
	Watch bool

	// ScriptDir resolves relative script paths. Defaults to the directory
	// of the store.
	ScriptDir string

	// Clock is the time source for recorded expansions.
	Clock func() time.Time
}

// App hosts one document and its expander.
type App struct {
	store     config.Store
	doc       *engine.Document
	backend   backend.Backend
	logger    *Logger
	scriptDir string
	clock     func() time.Time

	table    *expand.Table
	counter  *expand.Counter
	expander *expand.Expander
	surface  *documentSurface
	recorder *config.Recorder
	watcher  *watcher.Watcher
	metrics  *Metrics

	mu        sync.Mutex
	settings  config.Settings
	scripts   *lua.Scripts
	countText string
	message   string
	view      backend.View

	settingsDirty atomic.Bool
	scriptsDirty  atomic.Bool
	running       atomic.Bool
	closed        atomic.Bool

	closeOnce sync.Once
	closeErr  error
}

// New creates an App from opts.
func New(opts Options) (*App, error) {
	settings := opts.Settings.Clone()
	if err := settings.Validate(); err != nil {
		return nil, &InitError{Component: "settings", Err: err}
	}

	a := &App{
		store:     opts.Store,
		doc:       opts.Document,
		backend:   opts.Backend,
		logger:    opts.Logger,
		scriptDir: opts.ScriptDir,
		clock:     opts.Clock,
		settings:  settings,
		metrics:   NewMetrics(),
	}
	if a.logger == nil {
		a.logger = NullLogger
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if a.doc == nil {
		a.doc = engine.New()
	}
	if a.scriptDir == "" && a.store != nil {
		a.scriptDir = filepath.Dir(a.store.Path())
	}
	a.surface = &documentSurface{doc: a.doc}

	a.table = expand.NewTable(settings.Shortcuts)
	a.counter = expand.NewCounter(settings.Count)

	start, end := settings.Boundaries()
	expOpts := []expand.Option{
		expand.WithLogger(a.logger.WithComponent("expand")),
		expand.WithCounter(a.counter),
		expand.WithClock(a.clock),
	}
	if a.store != nil {
		a.recorder = config.NewRecorder(a.store, a.logger.WithComponent("store"))
		expOpts = append(expOpts, expand.WithRecorder(a.recorder))
	}
	source := expand.Chain{a.table, expand.SourceFunc(a.lookupScript)}
	a.expander = expand.New(expand.NewTrigger(start, end), source, a.activeSurface, expOpts...)
	a.counter.Attach(expand.DisplayFunc(a.setCountText))

	if err := a.reloadScripts(); err != nil {
		a.logger.Warn("scripts: %v", err)
	}

	if opts.Watch && a.store != nil {
		if err := a.startWatcher(); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	a.logger.Info("ready: %d shortcuts, start %q, end %q, count %d",
		a.table.Len(), settings.Start, settings.End, a.counter.Value())
	return a, nil
}

// Document returns the edited document.
func (a *App) Document() *engine.Document {
	return a.doc
}

// Expander returns the expander.
func (a *App) Expander() *expand.Expander {
	return a.expander
}

// Table returns the shortcut table.
func (a *App) Table() *expand.Table {
	return a.table
}

// Metrics returns the metrics tracker.
func (a *App) Metrics() *Metrics {
	return a.metrics
}

// Settings returns the active settings with the current count.
func (a *App) Settings() config.Settings {
	a.mu.Lock()
	s := a.settings.Clone()
	a.mu.Unlock()

	s.Shortcuts = a.table.Snapshot()
	s.Count = a.counter.Value()
	return s
}

// Status returns the status line text.
func (a *App) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.message == "" {
		return a.countText
	}
	return a.countText + " | " + a.message
}

// ApplySettings makes s the active configuration. The shortcut table and
// boundaries change in place; the trigger state and the count are kept.
func (a *App) ApplySettings(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return NewOperationError("apply settings", "", err)
	}

	a.table.Replace(s.Shortcuts)
	a.expander.SetBoundaries(s.Boundaries())

	a.mu.Lock()
	prev := a.settings.Scripts
	a.settings = s.Clone()
	a.mu.Unlock()

	a.logger.Debug("settings applied: %d shortcuts", a.table.Len())

	if slices.Equal(prev, s.Scripts) {
		return nil
	}
	a.rewatchScripts(prev, s.Scripts)
	return a.reloadScripts()
}

// Reload reads the store and applies its settings.
func (a *App) Reload() error {
	if a.store == nil {
		return nil
	}
	s, err := a.store.Load()
	if err != nil {
		err = NewOperationError("reload", a.store.Path(), err)
	} else {
		err = a.ApplySettings(s)
	}
	a.metrics.RecordReload(err)
	return err
}

// Save writes the document to its file.
func (a *App) Save() error {
	if err := a.doc.Save(); err != nil {
		return NewOperationError("save", a.doc.Path(), err)
	}
	a.logger.Info("saved %s", a.doc.Path())
	a.setMessage("wrote " + a.doc.Path())
	return nil
}

// Close stops the watcher, flushes pending count writes and releases
// scripts. The store is left open. Close is idempotent.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.closed.Store(true)

		var errs ErrorList
		if a.watcher != nil {
			if err := a.watcher.Close(); err != nil {
				errs.Add(NewComponentError("watcher", "close", err))
			}
		}
		if a.recorder != nil {
			a.recorder.Close()
		}

		a.mu.Lock()
		scripts := a.scripts
		a.scripts = nil
		a.mu.Unlock()
		if scripts != nil {
			if err := scripts.Close(); err != nil {
				errs.Add(NewComponentError("scripts", "close", err))
			}
		}
		a.closeErr = errs.AsError()
	})
	return a.closeErr
}

func (a *App) activeSurface() expand.Surface {
	return a.surface
}

func (a *App) lookupScript(name string) (string, bool) {
	a.mu.Lock()
	scripts := a.scripts
	a.mu.Unlock()
	if scripts == nil {
		return "", false
	}
	return scripts.Lookup(name)
}

func (a *App) setCountText(text string) {
	a.mu.Lock()
	a.countText = text
	a.mu.Unlock()
}

func (a *App) setMessage(msg string) {
	a.mu.Lock()
	a.message = msg
	a.mu.Unlock()
}

// reloadScripts rebuilds the script host from the configured paths. Scripts
// that fail to load are reported but do not prevent the others from
// loading.
func (a *App) reloadScripts() error {
	a.mu.Lock()
	paths := slices.Clone(a.settings.Scripts)
	a.mu.Unlock()

	var (
		next *lua.Scripts
		errs ErrorList
	)
	if len(paths) > 0 {
		var err error
		next, err = lua.NewScripts(
			lua.WithLogger(a.logger.WithComponent("lua")),
			lua.WithClock(a.clock),
		)
		if err != nil {
			return NewComponentError("scripts", "init", err)
		}
		for _, p := range paths {
			errs.Add(next.LoadFile(a.scriptPath(p)))
		}
	}

	a.mu.Lock()
	prev := a.scripts
	a.scripts = next
	a.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	if next != nil {
		a.logger.Debug("scripts loaded: %d shortcuts from %d files", next.Len(), len(paths))
	}
	return errs.AsError()
}

func (a *App) scriptPath(p string) string {
	if filepath.IsAbs(p) || a.scriptDir == "" {
		return p
	}
	return filepath.Join(a.scriptDir, p)
}
