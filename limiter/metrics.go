package limiter

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	kindDebounce = "debounce"
	kindThrottle = "throttle"
)

// Metrics holds the Prometheus collectors shared by limiters.
// All collectors are labelled with the limiter kind and name.
type Metrics struct {
	calls       *prometheus.CounterVec
	invocations *prometheus.CounterVec
	dropped     *prometheus.CounterVec
	superseded  *prometheus.CounterVec
	pending     *prometheus.GaugeVec
}

// NewMetrics creates the limiter collectors and registers them on reg, or on
// prometheus.DefaultRegisterer when reg is nil. Collectors that are already
// registered under the same descriptors are reused.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	labels := []string{"kind", "name"}

	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "limiter_calls_total",
				Help:      "Number of calls made to wrapped functions",
			},
			labels,
		),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "limiter_invocations_total",
				Help:      "Number of times the wrapped function actually ran",
			},
			labels,
		),
		dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "limiter_dropped_total",
				Help:      "Number of throttled calls dropped inside the cooldown window",
			},
			labels,
		),
		superseded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "limiter_superseded_total",
				Help:      "Number of pending debounced calls replaced by a newer call",
			},
			labels,
		),
		pending: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "limiter_pending",
				Help:      "Number of debounced calls waiting for their timer",
			},
			labels,
		),
	}

	var err error
	if m.calls, err = register(reg, m.calls); err != nil {
		return nil, err
	}
	if m.invocations, err = register(reg, m.invocations); err != nil {
		return nil, err
	}
	if m.dropped, err = register(reg, m.dropped); err != nil {
		return nil, err
	}
	if m.superseded, err = register(reg, m.superseded); err != nil {
		return nil, err
	}
	if m.pending, err = register(reg, m.pending); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("register limiter metrics: %w", err)
}

func (m *Metrics) call(kind, name string) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(kind, name).Inc()
}

func (m *Metrics) invoke(kind, name string) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(kind, name).Inc()
}

func (m *Metrics) drop(name string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(kindThrottle, name).Inc()
}

func (m *Metrics) supersede(name string) {
	if m == nil {
		return
	}
	m.superseded.WithLabelValues(kindDebounce, name).Inc()
}

func (m *Metrics) pendingAdd(name string, delta float64) {
	if m == nil {
		return
	}
	m.pending.WithLabelValues(kindDebounce, name).Add(delta)
}
