package dispatch

import "errors"

var (
	// ErrNilSender is returned by New when no transport is given.
	ErrNilSender = errors.New("dispatch: sender is required")

	// ErrNilPolicy is returned by New when no policy is given.
	ErrNilPolicy = errors.New("dispatch: policy is required")

	// ErrInvalidSenderIdentity is returned by New when the from address does not parse.
	ErrInvalidSenderIdentity = errors.New("dispatch: invalid sender identity")

	// ErrUnknownPolicy is returned by NewPolicy for an unsupported policy name.
	ErrUnknownPolicy = errors.New("dispatch: unknown policy")

	// ErrInvalidWorkers is returned by NewPolicy when the pool width is not positive.
	ErrInvalidWorkers = errors.New("dispatch: workers must be positive")

	// ErrInvalidPacing is returned by NewPolicy for a negative pacing delay.
	ErrInvalidPacing = errors.New("dispatch: pacing must not be negative")

	// ErrTransportPanic marks an item whose send attempt panicked.
	ErrTransportPanic = errors.New("dispatch: transport panicked")
)
