package limiter

import (
	"log/slog"
	"sync"
	"time"
)

// ThrottleGroup keeps an independent Throttler per key, e.g. per user or per
// element, sharing one wait period and set of options.
type ThrottleGroup[T any] struct {
	mu              sync.Mutex
	fn              func(key string, arg T)
	wait            time.Duration
	throttlers      map[string]*Throttler[T]
	opts            []Option
	o               *options
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

// NewThrottleGroup creates a ThrottleGroup. If cleanupInterval is positive a
// background routine removes idle keys at that interval until Close is
// called. A key is idle once its next call would be allowed anyway, so
// removal never changes which calls run, unless WithInitialCooldown is set:
// then a removed key starts a fresh cooldown on its next call.
func NewThrottleGroup[T any](fn func(key string, arg T), wait time.Duration, cleanupInterval time.Duration, opts ...Option) *ThrottleGroup[T] {
	g := &ThrottleGroup[T]{
		fn:              fn,
		wait:            wait,
		throttlers:      make(map[string]*Throttler[T]),
		opts:            opts,
		o:               newOptions(opts),
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go g.cleanupRoutine()
	}

	return g
}

// Call throttles fn(key, arg) using the throttler for key, creating it on
// first use, and reports whether fn ran. The key lookup and the window check
// happen under one lock, so a concurrent Cleanup cannot reset a window that
// a caller is about to use.
//
// With WithMaxKeys, a call for a new key when the group is full first sweeps
// idle keys; if the group is still full the call is dropped.
func (g *ThrottleGroup[T]) Call(key string, arg T) bool {
	now := g.o.clock.Now()

	g.mu.Lock()
	t, exists := g.throttlers[key]
	if !exists {
		if g.o.maxKeys > 0 && len(g.throttlers) >= g.o.maxKeys {
			g.sweep(now)
		}

		if g.o.maxKeys > 0 && len(g.throttlers) >= g.o.maxKeys {
			g.mu.Unlock()

			g.o.metrics.call(kindThrottle, g.o.name)
			g.o.metrics.drop(g.o.name)
			g.o.logger.Warn("throttle group full, dropped call",
				slog.String("name", g.o.name), slog.Int("max_keys", g.o.maxKeys))

			return false
		}

		t = NewThrottler(func(arg T) { g.fn(key, arg) }, g.wait, g.opts...)
		g.throttlers[key] = t
	}
	allowed := t.allow(now)
	g.mu.Unlock()

	return t.run(arg, allowed)
}

// Len returns the number of tracked keys.
func (g *ThrottleGroup[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.throttlers)
}

// Cleanup removes idle keys and returns how many were removed.
func (g *ThrottleGroup[T]) Cleanup() int {
	now := g.o.clock.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.sweep(now)
}

// sweep removes keys idle at now. g.mu must be held.
func (g *ThrottleGroup[T]) sweep(now time.Time) int {
	removed := 0
	for key, t := range g.throttlers {
		if t.idle(now) {
			delete(g.throttlers, key)
			removed++
		}
	}

	return removed
}

// Close stops the cleanup routine. Calls keep working after Close.
func (g *ThrottleGroup[T]) Close() {
	g.closeOnce.Do(func() {
		close(g.done)
	})
}

// cleanupRoutine periodically removes idle keys.
func (g *ThrottleGroup[T]) cleanupRoutine() {
	ticker := time.NewTicker(g.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := g.Cleanup(); removed > 0 {
				g.o.logger.Debug("throttle group cleanup",
					slog.String("name", g.o.name), slog.Int("removed", removed))
			}
		case <-g.done:
			return
		}
	}
}
