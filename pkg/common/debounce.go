package common

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of Trigger calls into one call of fn, run once
// the settle delay has passed without a new Trigger. Only the most recently
// scheduled run can fire. Hosts must call Dispose when they are torn down.
type Debouncer struct {
	mu         sync.Mutex
	run        sync.Mutex
	delay      time.Duration
	fn         func()
	timer      *time.Timer
	generation uint64
	pending    uint64
	computing  bool
	running    bool
	disposed   bool
	onCancel   func()
}

type DebouncerOption func(*Debouncer)

// WithCancelHook registers a function called each time a pending run is
// replaced or cancelled before it fired.
func WithCancelHook(fn func()) DebouncerOption {
	return func(d *Debouncer) {
		d.onCancel = fn
	}
}

func NewDebouncer(delay time.Duration, fn func(), opts ...DebouncerOption) *Debouncer {
	d := &Debouncer{
		delay: delay,
		fn:    fn,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// stopLocked drops the pending run, if any. d.mu must be held.
func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		if d.timer.Stop() && d.onCancel != nil {
			d.onCancel()
		}
		d.timer = nil
	}
	d.pending = 0
}

// Trigger marks the debouncer as computing and (re)schedules the run.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return
	}
	d.stopLocked()
	d.generation++
	d.computing = true
	gen := d.generation
	d.pending = gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// claim takes ownership of the pending run for gen. d.mu must be held.
func (d *Debouncer) claim(gen uint64) bool {
	if d.disposed || gen == 0 || d.pending != gen {
		return false
	}
	d.pending = 0
	d.timer = nil
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	ok := d.claim(gen)
	d.mu.Unlock()
	if ok {
		d.execute(gen)
	}
}

func (d *Debouncer) execute(gen uint64) {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	if d.disposed || gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	d.fn()

	d.mu.Lock()
	d.running = false
	if gen == d.generation {
		d.computing = false
	}
	d.mu.Unlock()
}

// Flush runs a pending call right away on the calling goroutine. It returns
// false when nothing was pending. While fn is running, on this or any other
// goroutine, the pending call is instead moved up to start as soon as fn
// returns, and Flush returns false without waiting for it.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	gen := d.pending
	if d.running {
		if gen != 0 && !d.disposed {
			if d.timer != nil {
				d.timer.Stop()
			}
			d.timer = time.AfterFunc(0, func() {
				d.fire(gen)
			})
		}
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	ok := d.claim(gen)
	d.mu.Unlock()
	if ok {
		d.execute(gen)
	}
	return ok
}

// Cancel drops a pending call and clears the computing flag.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.generation++
	d.computing = false
}

func (d *Debouncer) IsComputing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.computing
}

func (d *Debouncer) IsPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != 0
}

// Dispose cancels any pending call and makes later Triggers no-ops. It waits
// for a call that is already running, so fn is never invoked after Dispose
// returns. Dispose must not be called from fn.
func (d *Debouncer) Dispose() {
	d.mu.Lock()
	d.stopLocked()
	d.generation++
	d.computing = false
	d.disposed = true
	d.mu.Unlock()

	d.run.Lock()
	d.run.Unlock()
}
