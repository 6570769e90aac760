// Package logger builds the service's structured slog logger.
//
// Output is JSON on stdout. Request-scoped values such as the request ID are
// added to every record by ContextExtractor functions, and errors can be shipped
// to Sentry when a DSN is configured.
//
// # Basic Usage
//
//	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
//	if err != nil {
//		return err
//	}
//	log := logger.New(level, middlewares.RequestIDExtractor())
//
//	log.InfoContext(ctx, "batch dispatched", slog.Int("sent", 3))
//	// {"level":"INFO","msg":"batch dispatched","sent":3,"request_id":"..."}
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, slog.LevelInfo, extractors...)
//	defer logger.Flush(2 * time.Second)
//
// Error records create Sentry issues; warnings and errors are stored as Sentry logs.
// With an empty DSN the logger writes to stdout only, so the same code path works
// in development.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute for the current context, or false to
// skip it. Extractors run on every log call. FromContextValue covers the common
// case of a typed value under a private context key. LogHandlerDecorator applies
// them around any slog.Handler:
//
//	decorated := logger.NewLogHandlerDecorator(slog.NewTextHandler(os.Stderr, nil), extractors...)
//	log := slog.New(decorated)
package logger
