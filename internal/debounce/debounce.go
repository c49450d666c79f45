// Package debounce collapses bursts of calls into one trailing call.
//
// A Debouncer holds at most one pending call. Trigger replaces it and re-arms
// the timer, so only the last call of a burst runs, once the delay has elapsed
// without another Trigger.
package debounce

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer a Debouncer needs.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The default uses time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Stats counts what a Debouncer has done since creation.
type Stats struct {
	Triggered int // calls to Trigger that were accepted
	Replaced  int // pending calls dropped because a newer Trigger arrived
	Fired     int // calls that ran, by timer or Flush
}

type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	clock   Clock
	timer   Timer
	pending func()
	seq     uint64
	stopped bool
	stats   Stats
}

type Option func(*Debouncer)

// WithClock replaces the timer source.
func WithClock(c Clock) Option {
	return func(d *Debouncer) { d.clock = c }
}

func New(delay time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{delay: delay, clock: realClock{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger cancels any pending call and schedules fn to run after the delay.
// It returns false once the Debouncer is stopped.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.stats.Replaced++
	}
	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
	d.stats.Triggered++
	return true
}

// fire runs the pending call if seq still identifies it. A timer whose Stop
// lost the race against expiry arrives here with a stale seq and does nothing.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.take()
	d.mu.Unlock()
	fn()
}

// take clears the pending call and returns it. Callers hold d.mu.
func (d *Debouncer) take() func() {
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.stats.Fired++
	return fn
}

// Flush runs the pending call now, on the caller's goroutine.
// It reports whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.pending == nil {
		d.mu.Unlock()
		return false
	}
	fn := d.take()
	d.mu.Unlock()
	fn()
	return true
}

// Cancel drops the pending call without running it.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Debouncer) cancelLocked() bool {
	if d.pending == nil {
		return false
	}
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	return true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop cancels the pending call and makes every later Trigger a no-op.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}
