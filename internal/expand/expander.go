package expand

import (
	"sync"
	"time"

	"github.com/dshills/wordsmith/internal/input/key"
)

// Expansion describes a successful substitution for recorders.
type Expansion struct {
	Shortcut  string
	Expansion string
	Count     int
	Time      time.Time
}

// Recorder persists expansions. Record must not block: persistence is
// fire-and-forget and a failure never undoes the substitution.
type Recorder interface {
	Record(e Expansion)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(e Expansion)

// Record implements Recorder.
func (f RecorderFunc) Record(e Expansion) {
	f(e)
}

// Option configures an Expander.
type Option func(*Expander)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(e *Expander) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder sets the recorder notified after each expansion.
func WithRecorder(r Recorder) Option {
	return func(e *Expander) {
		e.recorder = r
	}
}

// WithCounter sets the replacement counter.
func WithCounter(c *Counter) Option {
	return func(e *Expander) {
		if c != nil {
			e.counter = c
		}
	}
}

// WithClock sets the time source used for recorded expansions.
func WithClock(now func() time.Time) Option {
	return func(e *Expander) {
		if now != nil {
			e.now = now
		}
	}
}

// Expander watches key presses and applies shortcut expansions.
type Expander struct {
	mu       sync.Mutex
	trigger  *Trigger
	source   Source
	surface  SurfaceFunc
	counter  *Counter
	recorder Recorder
	logger   Logger
	now      func() time.Time
}

// New creates an expander. source is consulted on every resolution, so
// changes to it take effect on the next key press. surface is called on
// every resolution to find the focused surface.
func New(trigger *Trigger, source Source, surface SurfaceFunc, opts ...Option) *Expander {
	e := &Expander{
		trigger: trigger,
		source:  source,
		surface: surface,
		counter: NewCounter(0),
		logger:  nopLogger{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Counter returns the replacement counter.
func (e *Expander) Counter() *Counter {
	return e.counter
}

// State returns the trigger state.
func (e *Expander) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trigger.State()
}

// SetBoundaries changes the boundary characters without resetting the
// trigger state.
func (e *Expander) SetBoundaries(start, end rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.trigger.SetBoundaries(start, end)
}

// Boundaries returns the configured boundary characters.
func (e *Expander) Boundaries() (start, end rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trigger.Boundaries()
}

// HandleKey processes a key press. Keys that type no character are ignored.
// It must be called before the host inserts the key into the document.
func (e *Expander) HandleKey(ev key.Event) Outcome {
	r, ok := ev.Char()
	if !ok {
		return Outcome{Reason: ReasonIgnored, State: e.State(), Count: e.counter.Value()}
	}
	return e.HandleChar(r)
}

// HandleChar processes one typed character.
func (e *Expander) HandleChar(k rune) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.trigger.Feed(k) {
		return Outcome{Reason: ReasonIgnored, State: e.trigger.State(), Count: e.counter.Value()}
	}

	out := e.resolve()
	out.State = e.trigger.State()
	return out
}

// resolve runs one resolution against the focused surface.
func (e *Expander) resolve() Outcome {
	out := Outcome{Count: e.counter.Value()}

	var s Surface
	if e.surface != nil {
		s = e.surface()
	}
	if s == nil {
		out.Reason = ReasonNoSurface
		e.logger.Debug("expand: no focused surface")
		return out
	}

	token, ok := Extract(s)
	if !ok {
		out.Reason = ReasonNoToken
		e.logger.Debug("expand: no word at cursor")
		return out
	}
	out.Token = token

	expansion, ok := e.source.Lookup(token.Text)
	if !ok {
		out.Reason = ReasonNoMatch
		e.logger.Debug("expand: no shortcut named %q", token.Text)
		return out
	}

	// The word starts after the start character, which is replaced too.
	if token.From.Column == 0 {
		out.Reason = ReasonNegativeColumn
		e.logger.Debug("expand: %q at %s has no start character before it", token.Text, token.From)
		return out
	}
	from := Position{Line: token.From.Line, Column: token.From.Column - 1}

	if err := s.Replace(from, token.To, expansion); err != nil {
		out.Reason = ReasonEditRejected
		out.Err = err
		e.logger.Warn("expand: replacing %q failed: %v", token.Text, err)
		return out
	}

	count := e.counter.Increment()
	out.Reason = ReasonExpanded
	out.Replaced = Span{From: from, To: token.To}
	out.Expansion = expansion
	out.Count = count
	e.logger.Info("expand: %q expanded (count=%d)", token.Text, count)

	if e.recorder != nil {
		e.recorder.Record(Expansion{
			Shortcut:  token.Text,
			Expansion: expansion,
			Count:     count,
			Time:      e.now(),
		})
	}
	return out
}
