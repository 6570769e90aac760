package mailer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
// HTML is delivered as the single body part.
type Email struct {
	From    string   // Sender mailbox
	Subject string   // Email subject
	HTML    string   // HTML body content
	To      []string // Recipients (at least one required)
	CC      []string // Carbon copy recipients
	BCC     []string // Blind carbon copy recipients
}

// Validate checks that the sender and every recipient parse as RFC 5322 addresses.
// All address problems are reported together, wrapped in ErrInvalidAddress.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}

	var errs []error
	if err := checkAddress("from", e.From); err != nil {
		errs = append(errs, err)
	}
	for _, group := range []struct {
		field string
		addrs []string
	}{
		{"to", e.To},
		{"cc", e.CC},
		{"bcc", e.BCC},
	} {
		for _, addr := range group.addrs {
			if err := checkAddress(group.field, addr); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidAddress}, errs...)...)
	}
	return nil
}

// ParseAddress parses a single mailbox and returns its normalized form.
func ParseAddress(addr string) (*mail.Address, error) {
	a, err := mail.ParseAddress(strings.TrimSpace(addr))
	if err != nil {
		return nil, errors.Join(ErrInvalidAddress, fmt.Errorf("%q: %w", addr, err))
	}
	return a, nil
}

func checkAddress(field, addr string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(addr)); err != nil {
		return fmt.Errorf("%s %q: %w", field, addr, err)
	}
	return nil
}
