package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level
}

// Enabled reports whether a DSN is configured.
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty, only stdout logging is enabled (graceful fallback for local dev).
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(cfg SentryConfig, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return newWithSentry(os.Stdout, cfg, level, extractors...)
}

func newWithSentry(w io.Writer, cfg SentryConfig, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	stdoutHandler := jsonHandler(w, level)

	if !cfg.Enabled() {
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		// Keep logging to stdout if Sentry cannot start.
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	// Failed sends are reported at warn, so warnings are shipped as logs by default.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(stdoutHandler, sentryHandler), extractors...))
}

// Flush waits up to timeout for buffered Sentry events to be delivered.
// It is a no-op when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
