package filter

import (
	"sync"
	"time"
)

// Metrics tracks search-duration statistics for the session. It lives as
// long as the process and is only reset by recreating it. Timer callbacks
// run off the update loop, so access is mutex-guarded.
type Metrics struct {
	mu   sync.Mutex
	last time.Duration
	runs int
	avg  float64 // milliseconds
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	LastDurationMs    float64
	TotalRuns         int
	AverageDurationMs float64
}

// NewMetrics creates an empty tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record appends one search-duration observation. The running mean uses the
// count before the increment.
func (m *Metrics) Record(d time.Duration) {
	ms := float64(d) / float64(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.avg = (m.avg*float64(m.runs) + ms) / float64(m.runs+1)
	m.runs++
	m.last = d
}

// Snapshot returns a copy of the current statistics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		LastDurationMs:    float64(m.last) / float64(time.Millisecond),
		TotalRuns:         m.runs,
		AverageDurationMs: m.avg,
	}
}
