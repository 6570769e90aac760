package internal_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbatch/internal"
)

type traceKey struct{}

func TestApp_DefaultErrorResponses(t *testing.T) {
	t.Parallel()

	h := &routeHandler{method: http.MethodPost, pattern: "/send_email", fn: func(c internal.Context) error {
		return c.NoContent(http.StatusOK)
	}}
	app := internal.New(internal.WithHandlers(h))

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"status":404,"message":"Not Found"}`, w.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/send_email", nil))

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
		require.JSONEq(t, `{"status":405,"message":"Method Not Allowed"}`, w.Body.String())
	})
}

func TestApp_HandlerErrors(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps code and message", func(t *testing.T) {
		t.Parallel()

		h := &routeHandler{pattern: "/", fn: func(c internal.Context) error {
			return internal.ErrUnauthorized("Unauthorized")
		}}
		app := internal.New(internal.WithHandlers(h))

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t, `{"status":401,"message":"Unauthorized"}`, w.Body.String())
	})

	t.Run("plain error becomes logged 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := &routeHandler{pattern: "/", fn: func(c internal.Context) error {
			return errors.New("relay credentials rejected")
		}}
		app := internal.New(internal.WithHandlers(h), internal.WithCustomLogger(log))

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.JSONEq(t, `{"status":500,"message":"Internal Server Error"}`, w.Body.String())
		require.NotContains(t, w.Body.String(), "credentials")
		require.Contains(t, buf.String(), "relay credentials rejected")
	})

	t.Run("error after write is not rendered", func(t *testing.T) {
		t.Parallel()

		h := &routeHandler{pattern: "/", fn: func(c internal.Context) error {
			_ = c.String(http.StatusOK, "partial")
			return errors.New("late failure")
		}}
		app := internal.New(internal.WithHandlers(h))

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "partial", w.Body.String())
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()

		h := &routeHandler{pattern: "/", fn: func(c internal.Context) error {
			return errors.New("boom")
		}}
		app := internal.New(
			internal.WithHandlers(h),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.String(http.StatusTeapot, err.Error())
			}),
		)

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusTeapot, w.Code)
		require.Equal(t, "boom", w.Body.String())

		w = httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		require.Equal(t, http.StatusTeapot, w.Code)
		require.Equal(t, "Not Found", w.Body.String())
	})
}

func TestApp_Middleware(t *testing.T) {
	t.Parallel()

	var order []string
	record := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}
	setTrace := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(traceKey{}, "trace-1")
			return next(c)
		}
	}
	deny := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if c.Query("token") != "ok" {
				return internal.ErrUnauthorized("Unauthorized")
			}
			return next(c)
		}
	}

	var handlerCalls int
	h := &routeHandler{
		method:  http.MethodPost,
		pattern: "/send_email",
		mw:      []internal.Middleware{record("route-1"), record("route-2"), deny},
		fn: func(c internal.Context) error {
			handlerCalls++
			return c.String(http.StatusOK, c.Get(traceKey{}).(string))
		},
	}
	app := internal.New(
		internal.WithMiddleware(record("global"), setTrace),
		internal.WithHandlers(h),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/send_email?token=ok", strings.NewReader("[]")))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "trace-1", w.Body.String())
	require.Equal(t, []string{"global", "route-1", "route-2"}, order)
	require.Equal(t, 1, handlerCalls)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/send_email?token=bad", strings.NewReader("[]")))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, 1, handlerCalls)
}

func TestApp_RouteGroups(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(groupHandler{}))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/batches/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "7", w.Body.String())

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/v1/batches/7", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "group", w.Header().Get("X-Group"))
}

type groupHandler struct{}

func (groupHandler) Routes(r internal.Router) {
	r.Route("/v1", func(r internal.Router) {
		r.PATCH("/batches/{id}", func(c internal.Context) error {
			return c.String(http.StatusOK, c.Param("id"))
		})
		r.Group(func(r internal.Router) {
			r.Use(func(next internal.HandlerFunc) internal.HandlerFunc {
				return func(c internal.Context) error {
					c.SetHeader("X-Group", "group")
					return next(c)
				}
			})
			r.OPTIONS("/batches/{id}", func(c internal.Context) error {
				return c.NoContent(http.StatusNoContent)
			})
		})
	})
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("smtp", func(context.Context) error { return errors.New("dial tcp: refused") }),
		internal.WithReadinessCheck("skipped", nil),
	))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.JSONEq(t, `{"status":"unhealthy","checks":{"smtp":{"status":"unhealthy","error":"dial tcp: refused"}}}`, w.Body.String())
}

func TestApp_HealthChecksCustomPaths(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithLivenessPath("/livez"),
		internal.WithReadinessPath("/readyz"),
	))

	for _, path := range []string{"/livez", "/readyz"} {
		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}
