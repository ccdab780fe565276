package limiter

import (
	"log/slog"
	"sync"
	"time"
)

// Throttler runs a function at most once per wait window, on the leading
// edge. The first call runs immediately; a later call runs only if more than
// wait has elapsed since the last call that ran. Calls inside the window are
// dropped, never deferred.
//
// The window does not start at construction unless WithInitialCooldown is
// given, so a Throttler never swallows its very first call by default.
type Throttler[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	wait    time.Duration
	last    time.Time // last allowed call
	started bool      // whether last is set
	opts    *options
}

// NewThrottler wraps fn. A negative wait is treated as zero.
//
// With WithInitialCooldown the construction time counts as the last allowed
// call, so the window starts immediately and an early first call is dropped.
func NewThrottler[T any](fn func(T), wait time.Duration, opts ...Option) *Throttler[T] {
	o := newOptions(opts)

	if wait < 0 {
		o.logger.Warn("negative throttle wait, using zero",
			slog.String("name", o.name), slog.Duration("wait", wait))
		wait = 0
	}

	t := &Throttler[T]{
		fn:   fn,
		wait: wait,
		opts: o,
	}

	if o.initialCooldown {
		t.last = o.clock.Now()
		t.started = true
	}

	return t
}

// Throttle wraps fn and returns the throttled function.
func Throttle[T any](fn func(T), wait time.Duration, opts ...Option) func(T) {
	t := NewThrottler(fn, wait, opts...)
	return func(arg T) { t.Call(arg) }
}

// Call runs fn(arg) synchronously if the window allows it and reports
// whether it ran. A dropped call is silent.
func (t *Throttler[T]) Call(arg T) bool {
	return t.run(arg, t.allow(t.opts.clock.Now()))
}

// run records the outcome of a window check and runs fn when allowed.
func (t *Throttler[T]) run(arg T, allowed bool) bool {
	t.opts.metrics.call(kindThrottle, t.opts.name)

	if !allowed {
		t.opts.metrics.drop(t.opts.name)
		t.opts.logger.Debug("throttle dropped call", slog.String("name", t.opts.name))
		return false
	}

	t.opts.metrics.invoke(kindThrottle, t.opts.name)
	t.fn(arg)

	return true
}

func (t *Throttler[T]) allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started && now.Sub(t.last) <= t.wait {
		return false
	}

	t.last = now
	t.started = true

	return true
}

// idle reports whether the next call would be allowed at now.
func (t *Throttler[T]) idle(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return !t.started || now.Sub(t.last) > t.wait
}
