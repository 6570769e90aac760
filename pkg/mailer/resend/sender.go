// Package resend implements mailer.Sender on top of the Resend HTTP API.
package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailbatch/pkg/mailer"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("resend: api key is required")

// Sender implements mailer.Sender using the Resend API.
// The underlying client is safe for concurrent use.
type Sender struct {
	client *resend.Client
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("resend: parse base url: %w", err)
		}
		client.BaseURL = u
	}

	return &Sender{client: client}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Cc:      email.CC,
		Bcc:     email.BCC,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(mailer.ErrSendFailed, fmt.Errorf("resend: %w", err))
	}

	return nil
}
