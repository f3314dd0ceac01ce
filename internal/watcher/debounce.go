package watcher

import (
	"sync"
	"time"
)

// debouncer collapses a burst of triggers into a single callback once the
// burst has been quiet for the configured delay. After stop returns, the
// callback will not fire again, even if a trigger was pending.
type debouncer struct {
	delay time.Duration
	fn    func(path string)

	mu      sync.Mutex
	timer   *time.Timer
	path    string
	stopped bool
}

func newDebouncer(delay time.Duration, fn func(path string)) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.path = path
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	path := d.path
	d.mu.Unlock()

	d.fn(path)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
