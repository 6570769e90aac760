package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxBodyBytes caps request bodies read by BindJSON.
const DefaultMaxBodyBytes = 10 << 20 // 10MB

// ErrEmptyBody is returned by BindJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the response writer.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Query returns the query parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Query(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Error builds an *HTTPError to return from a handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// BindJSON decodes the request body into v.
	// Unknown fields are ignored; trailing data after the first value is an error.
	BindJSON(v any) error

	// Written reports whether the response has been started.
	Written() bool

	// Logger returns the app logger.
	Logger() *slog.Logger

	// LogDebug, LogInfo, LogWarn and LogError log with the request context,
	// so context extractors (request ID) apply.
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key, value any)

	// Get retrieves a value from the request context.
	Get(key any) any
}

// requestContext implements the Context interface.
type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	maxBodyBytes   int64
}

// newContext wraps the writer unless an outer middleware already did.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}

	return &requestContext{
		request:        r,
		responseWriter: rw,
		logger:         app.logger,
		maxBodyBytes:   app.maxBodyBytes,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.responseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.responseWriter.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := io.WriteString(c.responseWriter, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	err := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *requestContext) BindJSON(v any) error {
	if c.request.Body == nil || c.request.Body == http.NoBody {
		return fmt.Errorf("bind json: %w", ErrEmptyBody)
	}

	body := http.MaxBytesReader(c.responseWriter, c.request.Body, c.maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("bind json: %w", ErrEmptyBody)
		}
		return fmt.Errorf("bind json: %w", err)
	}
	if dec.More() {
		return errors.New("bind json: unexpected data after JSON value")
	}
	return nil
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
