package health

import "errors"

var (
	// ErrCheckFailed wraps a failing, nil or panicking check.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is joined to a check's error when the probe deadline passed.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrCheckPanicked marks a check that panicked instead of returning.
	ErrCheckPanicked = errors.New("health: check panicked")
)
