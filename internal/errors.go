package internal

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the response status and the
// client-facing message. Handlers and middleware return it; the app's
// ErrorHandler renders it.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to clients).
	Err error

	// Message is the client-facing error message.
	Message string

	// RequestID is the request tracking ID.
	RequestID string

	// Code is the HTTP status code (e.g., 401, 500).
	Code int
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
// An empty message defaults to the status text.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	e := &HTTPError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.RequestID = id
	}
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrUnauthorized(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusMethodNotAllowed, message, opts...)
}

func ErrRequestTooLarge(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusRequestEntityTooLarge, message, opts...)
}

func ErrUnsupportedMediaType(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusUnsupportedMediaType, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusServiceUnavailable, message, opts...)
}

// IsHTTPError reports whether err or anything it wraps is an *HTTPError.
func IsHTTPError(err error) bool {
	return AsHTTPError(err) != nil
}

// AsHTTPError extracts the HTTPError from an error chain if present.
// Returns nil if there is none.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}
