// Package smtp implements mailer.Sender on top of an authenticated SMTP relay.
package smtp

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/mailbatch/pkg/mailer"
)

// Sender delivers messages through an SMTP relay.
//
// Each Send opens its own client connection, so a single Sender can be shared
// by concurrent workers without coordinating connection state.
type Sender struct {
	server string
	opts   []mail.Option
}

// New validates the configuration and returns a Sender.
// No connection is made until the first Send.
func New(cfg Config) (*Sender, error) {
	if cfg.Server == "" {
		return nil, ErrMissingServer
	}
	if (cfg.Username == "") != (cfg.Password == "") {
		return nil, ErrMissingCredentials
	}

	var opts []mail.Option
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	switch cfg.TLS {
	case TLSMandatory, "":
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	case TLSOpportunistic:
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	case TLSNone:
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	case TLSImplicit:
		opts = append(opts, mail.WithSSLPort(false))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTLSPolicy, cfg.TLS)
	}

	// The policy options only pick a port while none is set, so an explicit
	// port goes last. Without one go-mail keeps the policy's default port.
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &Sender{server: cfg.Server, opts: opts}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := buildMessage(email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.server, s.opts...)
	if err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}

	return nil
}

// buildMessage converts an Email into a single-part HTML go-mail message.
func buildMessage(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(email.From); err != nil {
		return nil, errors.Join(ErrBuildMessage, mailer.ErrInvalidAddress, err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, errors.Join(ErrBuildMessage, mailer.ErrInvalidAddress, err)
	}
	if len(email.CC) > 0 {
		if err := msg.Cc(email.CC...); err != nil {
			return nil, errors.Join(ErrBuildMessage, mailer.ErrInvalidAddress, err)
		}
	}
	if len(email.BCC) > 0 {
		if err := msg.Bcc(email.BCC...); err != nil {
			return nil, errors.Join(ErrBuildMessage, mailer.ErrInvalidAddress, err)
		}
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextHTML, email.HTML)

	return msg, nil
}
