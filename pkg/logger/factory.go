package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for an unknown level name.
var ErrInvalidLevel = errors.New("logger: invalid level")

// Config holds base logger configuration.
type Config struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseLevel converts a level name (debug, info, warn, error, case-insensitive)
// into a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return level, nil
}

// New creates a JSON logger writing to stdout at the given level,
// with optional context extractors.
func New(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, level, extractors...)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(jsonHandler(w, level), extractors...))
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
