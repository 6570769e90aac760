package mailbatch

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/mailbatch/internal"
	"github.com/dmitrymomot/mailbatch/pkg/health"
	"github.com/dmitrymomot/mailbatch/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// ErrorResponse is the JSON body rendered for failed requests.
	ErrorResponse = internal.ErrorResponse

	// HTTPError is an error carrying a response status and client-facing message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// Extractor tries multiple value sources in order.
	Extractor = internal.Extractor

	// ExtractorSource reads a single value from the request.
	ExtractorSource = internal.ExtractorSource
)

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := mailbatch.New(
//	    mailbatch.WithCustomLogger(log),
//	    mailbatch.WithMiddleware(middlewares.CORS(), middlewares.RequestID(), middlewares.Recover()),
//	    mailbatch.WithHandlers(handlers.NewEmail(dispatcher, cfg.AuthToken)),
//	    mailbatch.WithHealthChecks(mailbatch.WithReadinessCheck("smtp", sender.Healthcheck())),
//	)
//
//	err := app.Run(cfg.Addr, mailbatch.ShutdownTimeout(cfg.ShutdownTimeout))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithErrorHandler replaces the default {"status","message"} JSON error renderer.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithMaxBodyBytes limits the size of request bodies read by Context.BindJSON.
// Defaults to 10MB.
func WithMaxBodyBytes(n int64) Option {
	return internal.WithMaxBodyBytes(n)
}

// WithHealthChecks enables health check endpoints.
// Liveness (/health/live): always returns OK while the process runs.
// Readiness (/health/ready): runs all configured checks.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger with a component name, level and optional extractors.
func WithLogger(component string, level slog.Level, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, level, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithHealthTimeout bounds the readiness probe.
func WithHealthTimeout(d time.Duration) HealthOption {
	return internal.WithHealthTimeout(d)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Logger sets the logger used for server lifecycle events.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// WriteTimeout bounds response writes. Zero means no limit.
func WriteTimeout(d time.Duration) RunOption {
	return internal.WriteTimeout(d)
}

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnListening registers a callback invoked with the bound address.
func OnListening(fn func(net.Addr)) RunOption {
	return internal.OnListening(fn)
}

// Value extractors

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

// FromBearerToken reads a Bearer token from the Authorization header.
func FromBearerToken() ExtractorSource {
	return internal.FromBearerToken()
}

// Context helpers

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not found or type assertion fails.
//
// Example:
//
//	id := mailbatch.ContextValue[string](c, requestIDKey{})
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// HTTP errors

// NewHTTPError creates an HTTPError; an empty message defaults to the status text.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// ErrBadRequest creates a 400 error.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrUnauthorized creates a 401 error.
func ErrUnauthorized(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnauthorized(message, opts...)
}

// ErrUnsupportedMediaType creates a 415 error.
func ErrUnsupportedMediaType(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnsupportedMediaType(message, opts...)
}

// ErrInternal creates a 500 error.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// WithError attaches the underlying cause (logged, never rendered).
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// WithRequestID attaches the request tracking ID.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// AsHTTPError extracts the HTTPError from an error chain, or returns nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// ErrEmptyBody is returned by Context.BindJSON when the request has no body.
var ErrEmptyBody = internal.ErrEmptyBody
