// Package mailer defines the outbound transport contract used to deliver email.
//
// The package separates message construction from delivery, so the transport can
// be swapped (SMTP relay, Resend API) without touching the code that builds
// messages.
//
// # Architecture
//
//   - Email: a fully-prepared message (sender, recipients, subject, HTML body)
//   - Sender: interface that transports implement
//   - smtp.Sender: delivers through an SMTP relay (subpackage smtp)
//   - resend.Sender: delivers through the Resend API (subpackage resend)
//
// # Usage
//
//	sender, err := smtp.New(smtp.Config{
//		Server:   "smtp.example.com",
//		Port:     587,
//		Username: os.Getenv("SMTP_USERNAME"),
//		Password: os.Getenv("SMTP_PASSWORD"),
//	})
//	if err != nil {
//		return err
//	}
//
//	email := &mailer.Email{
//		From:    "team@example.com",
//		To:      []string{"user@example.com"},
//		Subject: "Welcome",
//		HTML:    "<p>Hello!</p>",
//	}
//	if err := email.Validate(); err != nil {
//		return err
//	}
//	if err := sender.Send(ctx, email); err != nil {
//		return err
//	}
//
// # Custom Transports
//
// Implement the Sender interface, or wrap a function with SenderFunc:
//
//	var noop mailer.Sender = mailer.SenderFunc(func(ctx context.Context, e *mailer.Email) error {
//		return nil
//	})
//
// # Errors
//
//   - ErrNoRecipient: No recipient specified
//   - ErrInvalidAddress: Sender or recipient does not parse as an RFC 5322 address
//   - ErrSendFailed: The transport rejected the message
package mailer
