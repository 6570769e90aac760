package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrInvalidAddress indicates a sender or recipient address failed to parse.
	ErrInvalidAddress = errors.New("invalid email address")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)
