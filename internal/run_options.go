package internal

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// RunOption configures the server runtime.
type RunOption func(*runConfig)

type runConfig struct {
	logger          *slog.Logger
	baseCtx         context.Context
	listening       func(net.Addr)
	shutdownHooks   []func(context.Context) error
	shutdownTimeout time.Duration
	writeTimeout    time.Duration
}

func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Logger sets the logger used for server lifecycle events.
// Defaults to the app logger.
func Logger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WriteTimeout bounds the time to write a response, including the time the
// handler spends dispatching a batch. Zero (the default) means no limit.
func WriteTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.writeTimeout = d
		}
	}
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
// Each hook receives a context with the shutdown timeout.
//
// Example:
//
//	mailbatch.ShutdownHook(func(context.Context) error {
//	    logger.Flush(2 * time.Second)
//	    return nil
//	})
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, fn)
		}
	}
}

// WithContext sets a custom base context for signal handling.
// Cancelling it triggers graceful shutdown, which is useful in tests.
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}

// OnListening registers a callback invoked with the bound address once the
// listener is open (useful with ":0").
func OnListening(fn func(net.Addr)) RunOption {
	return func(c *runConfig) {
		c.listening = fn
	}
}
