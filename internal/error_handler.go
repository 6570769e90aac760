package internal

import (
	"errors"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// DefaultErrorHandler renders errors as {"status": <code>, "message": <text>}.
// *HTTPError keeps its code and message; oversized bodies map to 413; anything
// else becomes a 500 whose cause is logged but not exposed.
func DefaultErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	if httpErr == nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httpErr = ErrRequestTooLarge("", WithError(err))
		} else {
			httpErr = ErrInternal("", WithError(err))
		}
	}

	if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed",
			slog.Int("status", httpErr.Code),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}

	return c.JSON(httpErr.Code, ErrorResponse{
		Status:    httpErr.Code,
		Message:   httpErr.Message,
		RequestID: httpErr.RequestID,
	})
}

func defaultNotFound(c Context) error {
	return ErrNotFound("")
}

func defaultMethodNotAllowed(c Context) error {
	return ErrMethodNotAllowed("")
}
