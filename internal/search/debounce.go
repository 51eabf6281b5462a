package search

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the recommended delay between the last keystroke
// and the effective-query update.
const DefaultDebounceDelay = 300 * time.Millisecond

// QueryDebouncer coalesces rapid query updates into a single delayed
// effective-query emission. Each Set cancels any pending timer and arms a new
// one; only the final value of a burst is emitted, no earlier than the delay
// after the last update. Close guarantees no emission after teardown.
type QueryDebouncer struct {
	mu        sync.Mutex
	timer     *time.Timer
	delay     time.Duration
	gen       uint64
	raw       string
	effective string
	closed    bool
	emit      func(string)
}

// NewQueryDebouncer creates a debouncer that calls emit with the effective
// query once a burst settles. emit runs on the timer goroutine.
func NewQueryDebouncer(delay time.Duration, emit func(string)) *QueryDebouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &QueryDebouncer{delay: delay, emit: emit}
}

// Set records a raw query update and restarts the debounce timer. An empty
// value debounces like any other value. The generation counter invalidates a
// superseded timer even when its callback already fired and is waiting on the
// lock, so a burst never emits early.
func (d *QueryDebouncer) Set(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.raw = raw
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire publishes the most recent raw value at the time the timer goes off,
// never an intermediate one. Stale generations are dropped.
func (d *QueryDebouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.closed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	value := d.raw
	d.effective = value
	emit := d.emit
	d.mu.Unlock()

	if emit != nil {
		emit(value)
	}
}

// Flush cancels any pending timer and publishes the raw value immediately.
func (d *QueryDebouncer) Flush() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	value := d.raw
	d.effective = value
	emit := d.emit
	d.mu.Unlock()

	if emit != nil {
		emit(value)
	}
}

// Raw returns the most recent raw query value.
func (d *QueryDebouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Effective returns the last emitted query value.
func (d *QueryDebouncer) Effective() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.effective
}

// Pending reports whether an update is still waiting to take effect.
func (d *QueryDebouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw != d.effective
}

// SetDelay changes the delay for subsequent updates. A pending timer keeps
// its original schedule.
func (d *QueryDebouncer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		return
	}
	d.mu.Lock()
	d.delay = delay
	d.mu.Unlock()
}

// Close cancels any pending emission. The debouncer stays silent afterwards.
func (d *QueryDebouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
