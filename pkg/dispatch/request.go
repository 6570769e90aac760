package dispatch

import (
	"slices"

	"github.com/dmitrymomot/mailbatch/pkg/mailer"
)

// Request is a single email-send instruction as submitted by the client.
// It is echoed back unchanged when its send fails. An absent or null cc/bcc
// list stays absent, an empty one is echoed as [].
type Request struct {
	To      string   `json:"to_email"`
	CC      []string `json:"cc_emails,omitzero"`
	BCC     []string `json:"bcc_emails,omitzero"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// Email builds the outbound message for this request. The request itself is
// not modified: cc and bcc lists are copied.
func (r Request) Email(from string) *mailer.Email {
	return &mailer.Email{
		From:    from,
		To:      []string{r.To},
		CC:      slices.Clone(r.CC),
		BCC:     slices.Clone(r.BCC),
		Subject: r.Subject,
		HTML:    r.Body,
	}
}
