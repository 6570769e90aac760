package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailbatch/pkg/health"
	"github.com/dmitrymomot/mailbatch/pkg/logger"
)

// Default server settings.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
	defaultAddress           = ":8000"
)

// App orchestrates the application lifecycle.
// It manages HTTP routing, middleware, and graceful shutdown.
// App is immutable after creation; all configuration is done via New().
type App struct {
	router       chi.Router
	errorHandler ErrorHandler
	healthConfig *healthConfig
	logger       *slog.Logger
	middlewares  []Middleware
	handlers     []Handler
	maxBodyBytes int64
}

// New creates a new application with the given options.
//
// Example:
//
//	app := mailbatch.New(
//	    mailbatch.WithMiddleware(middlewares.CORS(), middlewares.RequestID()),
//	    mailbatch.WithHandlers(handlers.NewEmail(dispatcher, secret)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router:       chi.NewRouter(),
		logger:       logger.NewNope(),
		errorHandler: DefaultErrorHandler,
		maxBodyBytes: DefaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a server error.
//
// Example:
//
//	err := app.Run(":8000", mailbatch.Logger(log), mailbatch.ShutdownTimeout(cfg.ShutdownTimeout))
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	if cfg.logger == nil {
		cfg.logger = a.logger
	}

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         addr,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		writeTimeout:    cfg.writeTimeout,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
		listening:       cfg.listening,
	})
}

func (a *App) setupRoutes() {
	// Global middleware wraps 404/405 too, so chi needs it registered first.
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	// Unmatched routes render through the error handler like any other error.
	a.router.NotFound(a.wrapHandler(defaultNotFound))
	a.router.MethodNotAllowed(a.wrapHandler(defaultMethodNotAllowed))

	if a.healthConfig != nil {
		hopts := []health.Option{health.WithLogger(a.logger), health.WithTimeout(a.healthConfig.timeout)}
		a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
		a.router.Get(a.healthConfig.readinessPath, health.ReadinessHandler(a.healthConfig.checks, hopts...))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError renders err unless the response has already been started.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogWarn("error after response was written", slog.Any("error", err))
		return
	}
	if herr := a.errorHandler(c, err); herr != nil {
		c.LogError("error handler failed", slog.Any("error", herr))
	}
}
