package limiter

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/web-frontend-engineering/web-library/env"
	"github.com/web-frontend-engineering/web-library/format"
)

// Config describes a limiter in a form that can be read from JSON or the
// environment.
type Config struct {
	Name             string          `json:"name"`              // Log and metric label
	Wait             format.Duration `json:"wait"`              // Debounce quiet period or throttle window
	CleanupInterval  format.Duration `json:"cleanup_interval"`  // ThrottleGroup idle key sweep, 0 disables
	InitialCooldown  bool            `json:"initial_cooldown"`  // See WithInitialCooldown
	MetricsNamespace string          `json:"metrics_namespace"` // Enables Prometheus metrics when set
	MaxKeys          int             `json:"max_keys"`          // ThrottleGroup key cap, 0 is unlimited
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Name:            defaultName,
		Wait:            format.Duration(300 * time.Millisecond),
		CleanupInterval: format.Duration(time.Minute),
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Wait < 0 {
		return wrapConfigError("wait", fmt.Errorf("%w: wait must be non-negative", ErrInvalidConfig))
	}
	if c.CleanupInterval < 0 {
		return wrapConfigError("cleanup_interval", fmt.Errorf("%w: cleanup interval must be non-negative", ErrInvalidConfig))
	}
	if c.MaxKeys < 0 {
		return wrapConfigError("max_keys", fmt.Errorf("%w: max keys must be non-negative", ErrInvalidConfig))
	}
	if c.Name == "" {
		c.Name = defaultName
	}
	return nil
}

// LoadConfig reads a Config from environment variables named
// PREFIX_NAME, PREFIX_WAIT, PREFIX_CLEANUP_INTERVAL, PREFIX_INITIAL_COOLDOWN,
// PREFIX_METRICS_NAMESPACE and PREFIX_MAX_KEYS, each falling back to its _FILE variant and
// /run/secrets (see env.GetEnv). Unset variables keep their defaults.
func LoadConfig(prefix string) (*Config, error) {
	cfg := DefaultConfig()

	key := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "_" + name
	}

	cfg.Name = env.GetEnv(key("NAME"), cfg.Name)

	if raw := env.GetEnv(key("WAIT")); raw != "" {
		wait, err := format.ParseDuration(raw)
		if err != nil {
			return nil, wrapConfigError(key("WAIT"), fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
		cfg.Wait = wait
	}

	cfg.CleanupInterval = format.Duration(env.GetEnvDuration(key("CLEANUP_INTERVAL"), cfg.CleanupInterval.Std()))
	cfg.InitialCooldown = env.GetEnvBool(key("INITIAL_COOLDOWN"), cfg.InitialCooldown)
	cfg.MetricsNamespace = env.GetEnv(key("METRICS_NAMESPACE"), cfg.MetricsNamespace)
	cfg.MaxKeys = env.GetEnvInt(key("MAX_KEYS"), cfg.MaxKeys)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Options converts the configuration into limiter options. Metrics are
// registered on reg (or the default registerer when reg is nil) only when
// MetricsNamespace is set.
func (c *Config) Options(reg prometheus.Registerer) ([]Option, error) {
	opts := []Option{WithName(c.Name)}

	if c.InitialCooldown {
		opts = append(opts, WithInitialCooldown())
	}

	if c.MaxKeys > 0 {
		opts = append(opts, WithMaxKeys(c.MaxKeys))
	}

	if c.MetricsNamespace != "" {
		m, err := NewMetrics(c.MetricsNamespace, reg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMetrics(m))
	}

	return opts, nil
}
