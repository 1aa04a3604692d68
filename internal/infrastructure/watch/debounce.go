// Package watch implements the report-only filesystem monitor for warded
// directories.
package watch

import (
	"sync"
	"time"
)

// PathDebouncer coalesces rapid events per path into a single callback
// invocation. Editors tend to burst several writes per save; the monitor
// should flag each touched path once.
type PathDebouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timers   map[string]*time.Timer
	callback func(path string)
}

// NewPathDebouncer creates a debouncer with the given window duration.
func NewPathDebouncer(window time.Duration, callback func(path string)) *PathDebouncer {
	return &PathDebouncer{
		window:   window,
		timers:   make(map[string]*time.Timer),
		callback: callback,
	}
}

// Trigger resets the timer for path. The callback fires once the window
// elapses with no further triggers for that path.
func (d *PathDebouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[path]; ok {
		timer.Stop()
	}
	d.timers[path] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		d.callback(path)
	})
}

// Stop cancels every pending callback.
func (d *PathDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for path, timer := range d.timers {
		timer.Stop()
		delete(d.timers, path)
	}
}
