package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbatch/internal"
)

type item struct {
	To      string `json:"to_email"`
	Subject string `json:"subject"`
}

func bindVia(t *testing.T, body string, opts ...internal.Option) ([]item, error) {
	t.Helper()

	var (
		got     []item
		bindErr error
		called  bool
	)
	h := &routeHandler{method: http.MethodPost, pattern: "/", fn: func(c internal.Context) error {
		called = true
		bindErr = c.BindJSON(&got)
		return c.NoContent(http.StatusNoContent)
	}}
	app := internal.New(append(opts, internal.WithHandlers(h))...)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	}
	app.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, called)
	return got, bindErr
}

func TestContext_BindJSON(t *testing.T) {
	t.Parallel()

	t.Run("array of objects", func(t *testing.T) {
		t.Parallel()

		got, err := bindVia(t, `[{"to_email":"a@x.com","subject":"s1","extra":true},{"to_email":"b@x.com"}]`)
		require.NoError(t, err)
		require.Equal(t, []item{{To: "a@x.com", Subject: "s1"}, {To: "b@x.com"}}, got)
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		got, err := bindVia(t, `[]`)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("no body", func(t *testing.T) {
		t.Parallel()

		_, err := bindVia(t, "")
		require.ErrorIs(t, err, internal.ErrEmptyBody)
	})

	t.Run("object instead of array", func(t *testing.T) {
		t.Parallel()

		_, err := bindVia(t, `{"to_email":"a@x.com"}`)
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		_, err := bindVia(t, `[{"to_email":`)
		require.Error(t, err)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := bindVia(t, `[] []`)
		require.Error(t, err)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		_, err := bindVia(t, `[{"to_email":"a@x.com","subject":"a long subject line"}]`, internal.WithMaxBodyBytes(16))
		var maxErr *http.MaxBytesError
		require.True(t, errors.As(err, &maxErr))
	})
}

func TestContext_Responses(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
			require.NoError(t, c.JSON(http.StatusCreated, map[string]int{"status": 201}))
			require.True(t, c.Written())
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		require.JSONEq(t, `{"status":201}`, w.Body.String())
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
			c.SetHeader("X-Batch", "1")
			require.NoError(t, c.String(http.StatusAccepted, "queued"))
		})
		require.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, "1", w.Header().Get("X-Batch"))
		require.Equal(t, "queued", w.Body.String())
	})

	t.Run("no content", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
			require.False(t, c.Written())
			require.NoError(t, c.NoContent(http.StatusNoContent))
		})
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Empty(t, w.Body.String())
	})
}

type valueKey struct{}

func TestContext_Values(t *testing.T) {
	t.Parallel()

	base := context.WithValue(context.Background(), valueKey{}, "from-request")
	req := httptest.NewRequestWithContext(base, http.MethodGet, "/?token=abc", nil)
	req.Header.Set("X-Request-ID", "req-1")

	requestVia(t, req, nil, func(c internal.Context) {
		require.Equal(t, "abc", c.Query("token"))
		require.Empty(t, c.Query("missing"))
		require.Equal(t, "req-1", c.Header("X-Request-ID"))

		require.Equal(t, "from-request", c.Value(valueKey{}))
		require.NoError(t, c.Err())

		c.Set(valueKey{}, "overridden")
		require.Equal(t, "overridden", c.Get(valueKey{}))
		require.Equal(t, "overridden", c.Request().Context().Value(valueKey{}))
		require.Equal(t, "overridden", c.Context().Value(valueKey{}))

		_, hasDeadline := c.Deadline()
		require.False(t, hasDeadline)
		require.NotNil(t, c.Logger())
	})
}

func TestContext_Error(t *testing.T) {
	t.Parallel()

	requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		err := c.Error(http.StatusBadRequest, "invalid request body", internal.WithRequestID("req-9"))
		require.Equal(t, http.StatusBadRequest, err.Code)
		require.Equal(t, "req-9", err.RequestID)
	})
}
