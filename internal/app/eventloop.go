package app

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/dshills/wordsmith/internal/expand"
	"github.com/dshills/wordsmith/internal/input/key"
	"github.com/dshills/wordsmith/internal/renderer/backend"
)

var (
	quitKey = key.NewRuneEvent('q', key.ModCtrl)
	saveKey = key.NewRuneEvent('s', key.ModCtrl)
)

// Interrupt payloads posted to the backend.
type (
	reloadRequest struct{}
	quitRequest   struct{}
)

// Run initializes the backend and processes events until Ctrl+Q, ctx is
// cancelled or the backend shuts down.
func (a *App) Run(ctx context.Context) (err error) {
	if a.backend == nil {
		return ErrNoBackend
	}
	if a.closed.Load() {
		return ErrClosed
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()
	defer a.logSession()

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			a.logger.Error("event loop: %v", r)
		}
	}()

	stop := context.AfterFunc(ctx, func() {
		_ = a.backend.Interrupt(quitRequest{})
	})
	defer stop()

	// Changes seen before the loop started.
	a.applyPending()
	a.render()

	for {
		ev := a.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return nil
		}

		err := a.handleEvent(ev)
		if errors.Is(err, ErrQuit) {
			a.logger.Info("quit")
			return nil
		}
		if err != nil {
			a.logger.Warn("%v", err)
			a.setMessage(err.Error())
			a.backend.Beep()
		}
		a.render()
	}
}

// handleEvent processes a backend event.
// Returns ErrQuit if the application should exit.
func (a *App) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		_, err := a.HandleKey(ev.Key)
		return err
	case backend.EventInterrupt:
		return a.handleInterrupt(ev.Data)
	case backend.EventFocus:
		// The trigger state survives focus changes.
		a.logger.Debug("focus: %t", ev.Focused)
		return nil
	default:
		// Resize and unknown events only need a redraw.
		return nil
	}
}

// logSession writes the metrics gathered while the loop ran.
func (a *App) logSession() {
	s := a.metrics.Snapshot()
	a.logger.Debug("session: %d keys (avg %s, max %s), %d renders, %d/%d expanded (%.0f%%), %d reloads (%d failed)",
		s.KeyCount, time.Duration(s.AvgKeyNs), time.Duration(s.MaxKeyNs),
		s.RenderCount, s.Expansions(), s.Resolutions(), s.HitRate(),
		s.Reloads, s.ReloadErrors)
}

func (a *App) handleInterrupt(data any) error {
	switch data.(type) {
	case quitRequest:
		return ErrQuit
	case reloadRequest:
		a.applyPending()
	}
	return nil
}

// HandleKey processes one key press: editor commands first, then the
// expander, then the key as typing. It returns ErrQuit for Ctrl+Q.
func (a *App) HandleKey(ev key.Event) (expand.Outcome, error) {
	timer := StartTimer()
	defer func() { a.metrics.RecordKey(timer.Elapsed()) }()

	a.applyPending()
	a.setMessage("")

	switch {
	case ev.Equals(quitKey):
		return expand.Outcome{}, ErrQuit
	case ev.Equals(saveKey):
		return expand.Outcome{}, a.Save()
	}

	outcome := a.expander.HandleKey(ev)
	a.metrics.RecordOutcome(outcome)
	if outcome.Reason == expand.ReasonEditRejected {
		a.logger.Warn("expansion of %q rejected: %v", outcome.Token.Text, outcome.Err)
	}

	if err := a.edit(ev); err != nil {
		return outcome, NewOperationError("edit", ev.String(), err)
	}
	return outcome, nil
}

// edit applies a key to the document as typing or cursor movement.
func (a *App) edit(ev key.Event) error {
	if r, ok := ev.Char(); ok {
		return a.doc.InsertRune(r)
	}
	if ev.IsModified() {
		return nil
	}

	switch ev.Key {
	case key.KeyBackspace:
		return a.doc.Backspace()
	case key.KeyLeft:
		a.doc.MoveLeft()
	case key.KeyRight:
		a.doc.MoveRight()
	case key.KeyUp:
		a.doc.MoveUp()
	case key.KeyDown:
		a.doc.MoveDown()
	case key.KeyHome:
		a.doc.MoveHome()
	case key.KeyEnd:
		a.doc.MoveEnd()
	}
	return nil
}

func (a *App) render() {
	timer := StartTimer()
	status := a.Status()

	a.mu.Lock()
	a.view = documentView(a.doc, a.view, status)
	view := a.view
	a.mu.Unlock()

	backend.Draw(a.backend, &view)

	a.mu.Lock()
	a.view.Top, a.view.Left = view.Top, view.Left
	a.mu.Unlock()

	a.metrics.RecordRender(timer.Elapsed())
}
