package mailer

import "context"

// Sender defines the minimal interface that outbound transports must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
//
// Implementations must be safe for concurrent use: the parallel dispatch
// policy shares one Sender across all of its workers.
type Sender interface {
	// Send delivers an email message.
	// The Email must have From, To, Subject, and HTML already set.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
