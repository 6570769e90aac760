package internal

import (
	"time"

	"github.com/dmitrymomot/mailbatch/pkg/health"
)

// Default health check settings.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
	defaultHealthTimeout = 5 * time.Second
)

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
	timeout       time.Duration
}

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithHealthTimeout bounds the whole readiness probe.
func WithHealthTimeout(d time.Duration) HealthOption {
	return func(c *healthConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during the readiness probe.
//
// Example:
//
//	mailbatch.WithReadinessCheck("smtp", sender.Healthcheck())
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if fn == nil {
			return
		}
		c.checks[name] = fn
	}
}
