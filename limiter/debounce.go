package limiter

import (
	"log/slog"
	"sync"
	"time"

	"github.com/web-frontend-engineering/web-library/clock"
)

// Debouncer delays calls to a function until a quiet period of wait has
// passed since the most recent Call. A burst of calls therefore runs the
// function once, wait after the last call, with the last call's argument.
//
// The argument is captured when the call is scheduled. There is no receiver
// rebinding: to debounce a method, pass a method value, which binds the
// receiver once at construction.
//
// The function runs on the timer's goroutine, never while the Debouncer's
// lock is held, so it may call back into the Debouncer.
type Debouncer[T any] struct {
	mu    sync.Mutex
	fn    func(T)
	wait  time.Duration
	timer clock.Timer
	gen   uint64 // identifies the current timer; stale timers compare unequal
	opts  *options
}

// NewDebouncer wraps fn. A negative wait is treated as zero.
func NewDebouncer[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	o := newOptions(opts)

	if wait < 0 {
		o.logger.Warn("negative debounce wait, using zero",
			slog.String("name", o.name), slog.Duration("wait", wait))
		wait = 0
	}

	return &Debouncer[T]{
		fn:   fn,
		wait: wait,
		opts: o,
	}
}

// Debounce wraps fn and returns the debounced function.
func Debounce[T any](fn func(T), wait time.Duration, opts ...Option) func(T) {
	return NewDebouncer(fn, wait, opts...).Call
}

// Call cancels any pending invocation and schedules fn(arg) to run after the
// wait period. Nothing from fn is returned to the caller.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	replaced := d.timer != nil
	if replaced {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = d.opts.clock.AfterFunc(d.wait, func() { d.fire(gen, arg) })
	d.mu.Unlock()

	d.opts.metrics.call(kindDebounce, d.opts.name)
	if replaced {
		d.opts.metrics.supersede(d.opts.name)
	} else {
		d.opts.metrics.pendingAdd(d.opts.name, 1)
	}

	d.opts.logger.Debug("debounce scheduled",
		slog.String("name", d.opts.name),
		slog.Duration("wait", d.wait),
		slog.Bool("replaced", replaced))
}

func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.opts.metrics.pendingAdd(d.opts.name, -1)
	d.opts.metrics.invoke(kindDebounce, d.opts.name)
	d.opts.logger.Debug("debounce fired", slog.String("name", d.opts.name))

	d.fn(arg)
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

// Stop cancels the pending invocation, if any, and reports whether there was
// one. The Debouncer stays usable; a later Call schedules again.
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}

	d.timer.Stop()
	d.timer = nil
	d.gen++
	d.mu.Unlock()

	d.opts.metrics.pendingAdd(d.opts.name, -1)

	return true
}
