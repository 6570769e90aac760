package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/mailbatch/internal"
)

// routeHandler registers a single route for tests.
type routeHandler struct {
	method  string
	pattern string
	fn      internal.HandlerFunc
	mw      []internal.Middleware
}

func (h *routeHandler) Routes(r internal.Router) {
	switch h.method {
	case http.MethodPost:
		r.POST(h.pattern, h.fn, h.mw...)
	case http.MethodPatch:
		r.PATCH(h.pattern, h.fn, h.mw...)
	case http.MethodOptions:
		r.OPTIONS(h.pattern, h.fn, h.mw...)
	default:
		r.GET(h.pattern, h.fn, h.mw...)
	}
}

// requestVia serves req through an App whose only route is "GET /" (or GET /{id}
// when the path has a segment) and runs fn inside the handler.
func requestVia(t *testing.T, req *http.Request, opts []internal.Option, fn func(c internal.Context)) *httptest.ResponseRecorder {
	t.Helper()

	pattern := "/"
	if req.URL.Path != "/" {
		pattern = "/{id}"
	}

	h := &routeHandler{method: http.MethodGet, pattern: pattern, fn: func(c internal.Context) error {
		fn(c)
		return nil
	}}
	app := internal.New(append(opts, internal.WithHandlers(h))...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}
