package limiter

import (
	"io"
	"log/slog"

	"github.com/web-frontend-engineering/web-library/clock"
)

// Option configures a Debouncer, Throttler or ThrottleGroup.
type Option func(*options)

type options struct {
	// clock supplies the current time and timers
	clock clock.Clock

	// logger receives debug records for scheduled, fired and dropped calls
	logger *slog.Logger

	// name labels log records and metrics
	name string

	// metrics, when set, counts calls, invocations and drops
	metrics *Metrics

	// initialCooldown starts a throttle window at construction time
	initialCooldown bool

	// maxKeys caps the number of keys a ThrottleGroup tracks, 0 is unlimited
	maxKeys int
}

const defaultName = "default"

func newOptions(opts []Option) *options {
	o := &options{
		clock:  clock.Real(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		name:   defaultName,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithClock sets the clock used for timestamps and deferred calls.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName sets the name used in log records and metric labels.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithMetrics records activity on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithInitialCooldown makes a Throttler treat its construction time as the
// last allowed call, so calls within the first wait period are dropped.
// It has no effect on a Debouncer.
func WithInitialCooldown() Option {
	return func(o *options) {
		o.initialCooldown = true
	}
}

// WithMaxKeys caps the number of keys a ThrottleGroup tracks. Zero or a
// negative n means no cap. It has no effect on a Debouncer or Throttler.
func WithMaxKeys(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxKeys = n
		}
	}
}
