package config

import (
	"sync"

	"github.com/dshills/wordsmith/internal/expand"
)

// Logger receives recorder diagnostics.
type Logger = expand.Logger

// Recorder persists expansion counts on a background goroutine.
// Record never blocks; pending counts are coalesced so only the latest is
// written. Stores implementing HistoryStore also receive each expansion.
type Recorder struct {
	store   Store
	history HistoryStore
	logger  Logger

	mu       sync.Mutex
	count    int
	hasCount bool
	pending  []expand.Expansion
	closed   bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewRecorder starts a recorder writing to store. logger may be nil.
func NewRecorder(store Store, logger Logger) *Recorder {
	r := &Recorder{
		store:  store,
		logger: logger,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if h, ok := store.(HistoryStore); ok {
		r.history = h
	}
	go r.run()
	return r
}

// Record implements expand.Recorder.
func (r *Recorder) Record(e expand.Expansion) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.count = e.Count
	r.hasCount = true
	if r.history != nil {
		r.pending = append(r.pending, e)
	}
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Close flushes pending writes and stops the goroutine.
func (r *Recorder) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.quit)
	})
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for {
		select {
		case <-r.wake:
			r.flush()
		case <-r.quit:
			r.flush()
			return
		}
	}
}

func (r *Recorder) flush() {
	r.mu.Lock()
	count, hasCount := r.count, r.hasCount
	pending := r.pending
	r.hasCount = false
	r.pending = nil
	r.mu.Unlock()

	for _, e := range pending {
		if err := r.history.RecordExpansion(e.Shortcut, e.Time); err != nil {
			r.warn("recording expansion %q: %v", e.Shortcut, err)
		}
	}
	if hasCount {
		if err := r.store.SaveCount(count); err != nil {
			r.warn("saving count %d: %v", count, err)
		}
	}
}

func (r *Recorder) warn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
