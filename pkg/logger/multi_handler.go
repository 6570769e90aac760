package logger

import (
	"context"
	"errors"
	"log/slog"
)

// multiHandler fans records out to stdout and Sentry. Every enabled handler
// sees every record; a Sentry failure never suppresses the stdout line.
type multiHandler []slog.Handler

func newMultiHandler(handlers ...slog.Handler) slog.Handler {
	return multiHandler(handlers)
}

func (h multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h multiHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, handler := range h {
		if !handler.Enabled(ctx, rec.Level) {
			continue
		}
		if err := handler.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h multiHandler) WithGroup(name string) slog.Handler {
	return h.each(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h multiHandler) each(fn func(slog.Handler) slog.Handler) multiHandler {
	out := make(multiHandler, len(h))
	for i, handler := range h {
		out[i] = fn(handler)
	}
	return out
}
