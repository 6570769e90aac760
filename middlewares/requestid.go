package middlewares

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/mailbatch/internal"
	"github.com/dmitrymomot/mailbatch/pkg/logger"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// maxRequestIDLength caps IDs accepted from upstream headers.
const maxRequestIDLength = 128

// DefaultRequestIDHeaders are the headers checked (in order) for an existing request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Generator      func() string // ID generator function
	ResponseHeader string        // Response header name
	Headers        []string      // Headers to check for existing ID (in order)
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders sets the headers to check for existing request IDs.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Headers = headers
	}
}

// WithRequestIDGenerator sets a custom ID generator function.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// WithRequestIDResponseHeader sets the response header name.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

// RequestID returns middleware that assigns an ID to each request.
// An upstream ID from the configured headers is reused; otherwise a UUIDv4 is
// generated. The ID is stored in the request context (see RequestIDExtractor)
// and echoed in the response header.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := &RequestIDConfig{
		Headers:        DefaultRequestIDHeaders,
		Generator:      uuid.NewString,
		ResponseHeader: "X-Request-ID",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			var reqID string
			for _, header := range cfg.Headers {
				if v := c.Header(header); v != "" && len(v) <= maxRequestIDLength {
					reqID = v
					break
				}
			}

			if reqID == "" {
				reqID = cfg.Generator()
			}

			c.Set(requestIDKey{}, reqID)
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, reqID)
			}

			return next(c)
		}
	}
}

// GetRequestID extracts the request ID from the context.
// Returns an empty string if no request ID is set.
func GetRequestID(c internal.Context) string {
	if v, ok := c.Get(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor returns a ContextExtractor that adds "request_id" to every
// log record written with the request context, including dispatch logs.
func RequestIDExtractor() logger.ContextExtractor {
	return logger.FromContextValue[string](requestIDKey{}, "request_id")
}
