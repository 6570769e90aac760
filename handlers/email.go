package handlers

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"github.com/dmitrymomot/mailbatch"
	"github.com/dmitrymomot/mailbatch/middlewares"
	"github.com/dmitrymomot/mailbatch/pkg/dispatch"
)

// SendEmailPath is the batch submission endpoint.
const SendEmailPath = "/send_email"

// MessageInvalidBody is reported when the body is not a JSON array of send requests.
const MessageInvalidBody = "Request body must be a JSON array of emails"

// BatchDispatcher sends a batch and reports which items went out.
// *dispatch.Dispatcher satisfies it.
type BatchDispatcher interface {
	Dispatch(ctx context.Context, batch []dispatch.Request) dispatch.Outcome
}

// Email handles batch email submission.
type Email struct {
	dispatcher BatchDispatcher
	auth       mailbatch.Middleware
}

// NewEmail creates the batch handler. Requests must carry secret in the token
// query parameter; tokenOpts customize where the token is looked up.
// NewEmail panics if secret is empty.
func NewEmail(d BatchDispatcher, secret string, tokenOpts ...middlewares.TokenOption) *Email {
	return &Email{
		dispatcher: d,
		auth:       middlewares.Token(secret, tokenOpts...),
	}
}

// Routes implements mailbatch.Handler.
func (h *Email) Routes(r mailbatch.Router) {
	r.POST(SendEmailPath, h.send, h.auth)
}

func (h *Email) send(c mailbatch.Context) error {
	if ct := c.Header("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err != nil || mt != "application/json" {
			return mailbatch.ErrUnsupportedMediaType("")
		}
	}

	var batch []dispatch.Request
	if err := c.BindJSON(&batch); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return mailbatch.ErrBadRequest(MessageInvalidBody, mailbatch.WithError(err))
	}

	result := dispatch.Aggregate(h.dispatcher.Dispatch(c.Context(), batch))
	return c.JSON(result.Status, result)
}
