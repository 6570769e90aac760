package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/mailbatch/internal"
)

type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	values   map[any]any
	logger   *slog.Logger
	written  bool
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: w,
		request:  r,
		values:   make(map[any]any),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// withLogger routes the context's log calls into buf as JSON lines.
func (c *testContext) withLogger(buf *syncBuffer) *testContext {
	c.logger = slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return c
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(name string) string      { return "" }

func (c *testContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }

func (c *testContext) JSON(code int, v any) error {
	c.written = true
	c.response.Header().Set("Content-Type", "application/json")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.written = true
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error {
	c.written = true
	c.response.WriteHeader(code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) BindJSON(v any) error { return json.NewDecoder(c.request.Body).Decode(v) }
func (c *testContext) Written() bool        { return c.written }
func (c *testContext) Logger() *slog.Logger { return c.logger }

func (c *testContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) Set(key, value any) {
	c.values[key] = value
	// Also store in request context for context extractors
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.values[key]
}

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
