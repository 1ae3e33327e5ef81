package timex

import (
	"sync"
	"time"
)

// Debouncer delays a callback until the given interval has passed without
// another call. Each Do resets the timer, so only the last callback of a
// burst runs. The callback executes on a timer goroutine.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Do schedules fn after the debounce interval, cancelling any callback
// scheduled by a previous Do that has not fired yet.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels the pending callback, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttler runs a callback at most once per interval. Calls that arrive
// while the interval has not elapsed are dropped, not queued.
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// Do runs fn synchronously if the interval has elapsed since the last
// accepted call, and reports whether fn ran.
func (t *Throttler) Do(fn func()) bool {
	t.mu.Lock()
	now := time.Now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		t.mu.Unlock()
		return false
	}
	t.last = now
	t.mu.Unlock()

	fn()
	return true
}
