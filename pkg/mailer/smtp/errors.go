package smtp

import "errors"

var (
	// ErrMissingServer is returned when no relay host is configured.
	ErrMissingServer = errors.New("smtp: server is required")

	// ErrMissingCredentials is returned when only one of username/password is set.
	ErrMissingCredentials = errors.New("smtp: username and password must be set together")

	// ErrUnknownTLSPolicy is returned for an unsupported TLS policy name.
	ErrUnknownTLSPolicy = errors.New("smtp: unknown tls policy")

	// ErrBuildMessage indicates the message could not be assembled.
	ErrBuildMessage = errors.New("smtp: failed to build message")

	// ErrHealthcheckFailed indicates the relay could not be reached.
	ErrHealthcheckFailed = errors.New("smtp: healthcheck failed")
)
