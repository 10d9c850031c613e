package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/wordsmith/internal/expand"
)

// reasonSlots covers every expand.Reason value.
const reasonSlots = int(expand.ReasonEditRejected) + 1

// Metrics tracks key handling and expansion statistics.
type Metrics struct {
	// Key handling
	keyCount   atomic.Uint64
	keyTotalNs atomic.Int64
	keyMaxNs   atomic.Int64

	// Rendering
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Resolution outcomes, indexed by expand.Reason
	outcomes [reasonSlots]atomic.Uint64

	// Settings reloads
	reloads      atomic.Uint64
	reloadErrors atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records how long one key event took to handle.
func (m *Metrics) RecordKey(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.keyCount.Add(1)
	m.keyTotalNs.Add(ns)

	for {
		old := m.keyMaxNs.Load()
		if ns <= old {
			break
		}
		if m.keyMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordOutcome counts the reason of an expander outcome.
func (m *Metrics) RecordOutcome(o expand.Outcome) {
	if o.Reason < 0 || int(o.Reason) >= reasonSlots {
		return
	}
	m.outcomes[o.Reason].Add(1)
}

// RecordReload records a settings reload attempt.
func (m *Metrics) RecordReload(err error) {
	m.reloads.Add(1)
	if err != nil {
		m.reloadErrors.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	keyCount := m.keyCount.Load()
	renderCount := m.renderCount.Load()

	var avgKeyNs int64
	if keyCount > 0 {
		avgKeyNs = m.keyTotalNs.Load() / int64(keyCount)
	}

	var avgRenderNs int64
	if renderCount > 0 {
		avgRenderNs = m.renderTotalNs.Load() / int64(renderCount)
	}

	outcomes := make(map[expand.Reason]uint64)
	for i := range m.outcomes {
		if n := m.outcomes[i].Load(); n > 0 {
			outcomes[expand.Reason(i)] = n
		}
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		KeyCount:     keyCount,
		AvgKeyNs:     avgKeyNs,
		MaxKeyNs:     m.keyMaxNs.Load(),
		RenderCount:  renderCount,
		AvgRenderNs:  avgRenderNs,
		Outcomes:     outcomes,
		Reloads:      m.reloads.Load(),
		ReloadErrors: m.reloadErrors.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	KeyCount     uint64
	AvgKeyNs     int64
	MaxKeyNs     int64
	RenderCount  uint64
	AvgRenderNs  int64
	Outcomes     map[expand.Reason]uint64
	Reloads      uint64
	ReloadErrors uint64
}

// Expansions returns the number of successful expansions.
func (s MetricsSnapshot) Expansions() uint64 {
	return s.Outcomes[expand.ReasonExpanded]
}

// Resolutions returns the number of key presses that attempted a resolution.
func (s MetricsSnapshot) Resolutions() uint64 {
	var total uint64
	for reason, n := range s.Outcomes {
		if reason != expand.ReasonIgnored {
			total += n
		}
	}
	return total
}

// HitRate returns the percentage of resolutions that expanded.
func (s MetricsSnapshot) HitRate() float64 {
	total := s.Resolutions()
	if total == 0 {
		return 0
	}
	return float64(s.Expansions()) / float64(total) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
