package smtp

import (
	"context"
	"errors"

	"github.com/wneessen/go-mail"
)

// Healthcheck returns a closure that dials the relay (including TLS and auth)
// and closes the connection again. Compatible with health.CheckFunc.
func (s *Sender) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		client, err := mail.NewClient(s.server, s.opts...)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if err := client.DialWithContext(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return client.Close()
	}
}
