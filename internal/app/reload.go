package app

import (
	"path/filepath"

	"github.com/dshills/wordsmith/internal/config/watcher"
)

// startWatcher watches the store file and the script files. Changes are
// applied on the event loop, or on the next key press when no loop runs.
func (a *App) startWatcher() error {
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		a.logger.Warn("watcher: %v", err)
	}))
	if err != nil {
		return &InitError{Component: "watcher", Err: err}
	}
	if err := w.Watch(a.store.Path()); err != nil {
		_ = w.Close()
		return &InitError{Component: "watcher", Err: err}
	}
	w.OnChange(a.onFileChange)
	a.watcher = w

	a.mu.Lock()
	scripts := a.settings.Scripts
	a.mu.Unlock()
	a.rewatchScripts(nil, scripts)
	return nil
}

// onFileChange runs on the watcher goroutine.
func (a *App) onFileChange(ev watcher.Event) {
	if samePath(ev.Path, a.store.Path()) {
		a.settingsDirty.Store(true)
	} else {
		a.scriptsDirty.Store(true)
	}
	a.logger.Debug("%s %s", ev.Op, ev.Path)

	if a.running.Load() {
		if err := a.backend.Interrupt(reloadRequest{}); err != nil {
			a.logger.Warn("posting reload: %v", err)
		}
	}
}

// applyPending applies file changes reported by the watcher.
func (a *App) applyPending() {
	if a.settingsDirty.Swap(false) {
		if err := a.Reload(); err != nil {
			a.logger.Warn("%v", err)
			a.setMessage("reload failed")
		}
	}
	if a.scriptsDirty.Swap(false) {
		if err := a.reloadScripts(); err != nil {
			a.logger.Warn("scripts: %v", err)
			a.setMessage("script reload failed")
		}
	}
}

func (a *App) rewatchScripts(prev, next []string) {
	if a.watcher == nil {
		return
	}
	for _, p := range prev {
		if err := a.watcher.Unwatch(a.scriptPath(p)); err != nil {
			a.logger.Warn("unwatch %s: %v", p, err)
		}
	}
	for _, p := range next {
		if err := a.watcher.Watch(a.scriptPath(p)); err != nil {
			a.logger.Warn("watch %s: %v", p, err)
		}
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
