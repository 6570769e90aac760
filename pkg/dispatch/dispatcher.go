package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailbatch/pkg/logger"
	"github.com/dmitrymomot/mailbatch/pkg/mailer"
)

// Dispatcher drives batches through a mailer.Sender under a Policy.
// It is safe for concurrent use by multiple requests.
type Dispatcher struct {
	sender      mailer.Sender
	policy      Policy
	logger      *slog.Logger
	from        string
	logFailures bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for batch and failure logs.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFailureLogging toggles a warning log line for every failed item.
// Enabled by default.
func WithFailureLogging(enabled bool) Option {
	return func(d *Dispatcher) {
		d.logFailures = enabled
	}
}

// New creates a Dispatcher sending from the given mailbox.
// Misconfiguration is reported here so the process can refuse to start.
func New(sender mailer.Sender, from string, policy Policy, opts ...Option) (*Dispatcher, error) {
	if sender == nil {
		return nil, ErrNilSender
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}

	addr, err := mailer.ParseAddress(from)
	if err != nil {
		return nil, errors.Join(ErrInvalidSenderIdentity, err)
	}

	d := &Dispatcher{
		sender:      sender,
		policy:      policy,
		logger:      logger.NewNope(),
		from:        addr.Address,
		logFailures: true,
	}
	if addr.Name != "" {
		d.from = addr.String()
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Dispatch attempts every item of the batch and returns the partition of sent
// and failed items. It never returns early: the caller's cancellation is ignored
// once the batch has started, while context values stay visible to the transport
// and to logs.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []Request) Outcome {
	ctx = context.WithoutCancel(ctx)
	if len(batch) == 0 {
		return Outcome{}
	}

	start := time.Now()
	d.logger.InfoContext(ctx, "dispatching batch",
		slog.Int("size", len(batch)),
		slog.String("policy", fmt.Sprint(d.policy)),
	)

	out := d.policy.Run(ctx, batch, d.send)

	d.logger.InfoContext(ctx, "batch dispatched",
		slog.Int("sent", len(out.Sent)),
		slog.Int("failed", len(out.Failed)),
		slog.Duration("duration", time.Since(start)),
	)

	return out
}

func (d *Dispatcher) send(ctx context.Context, req Request) error {
	err := d.attempt(ctx, req)
	if err != nil && d.logFailures {
		d.logger.WarnContext(ctx, "send failed",
			slog.String("to", req.To),
			slog.String("subject", req.Subject),
			slog.Any("error", err),
		)
	}
	return err
}

func (d *Dispatcher) attempt(ctx context.Context, req Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTransportPanic, r)
		}
	}()

	email := req.Email(d.from)
	if err := email.Validate(); err != nil {
		return err
	}

	return d.sender.Send(ctx, email)
}
