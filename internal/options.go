package internal

import (
	"log/slog"

	"github.com/dmitrymomot/mailbatch/pkg/health"
	"github.com/dmitrymomot/mailbatch/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithMaxBodyBytes limits the size of request bodies read by Context.BindJSON.
func WithMaxBodyBytes(n int64) Option {
	return func(a *App) {
		if n > 0 {
			a.maxBodyBytes = n
		}
	}
}

// WithHealthChecks enables health check endpoints.
// Liveness (/health/live) always returns OK while the process runs.
// Readiness (/health/ready) runs all configured checks.
//
// Example:
//
//	mailbatch.WithHealthChecks(
//	    mailbatch.WithReadinessCheck("smtp", sender.Healthcheck()),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			timeout:       defaultHealthTimeout,
			checks:        make(health.Checks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a JSON logger at the given level, tagged with a component
// name, with optional context extractors (e.g. request ID).
func WithLogger(component string, level slog.Level, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(level, extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully configured logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
