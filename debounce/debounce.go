// Package debounce decouples a rapidly changing input value from the rate
// at which a dependent action fires.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the recommended delay for search-as-you-type input.
const DefaultDelay = 300 * time.Millisecond

// Debouncer delivers the most recent value passed to Set once the value has
// stopped changing for the configured delay. Intermediate values in a burst
// are discarded, never delivered.
type Debouncer[T any] struct {
	mu     sync.Mutex
	timer  *time.Timer
	delay  time.Duration
	fn     func(T)
	stable T
	closed bool
}

// New creates a debouncer that calls fn with the settled value.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Set records a new raw value and restarts the delay timer. The callback
// fires with this value only if no further Set call happens within the delay.
func (d *Debouncer[T]) Set(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	// Cancel pending timer, only the latest value survives
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.deliver(value)
	})
}

func (d *Debouncer[T]) deliver(value T) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.stable = value
	fn := d.fn
	d.mu.Unlock()

	if fn != nil {
		fn(value)
	}
}

// Stable returns the last value that was actually delivered.
func (d *Debouncer[T]) Stable() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stable
}

// Cancel drops any pending delivery without closing the debouncer.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels any pending delivery and prevents all future ones. A timer
// that already expired but has not yet delivered is suppressed as well.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.closed = true
}
