package mailer

import "errors"

var (
	// ErrMissingSender indicates no sender address could be resolved from
	// defaults, CSV columns or front matter.
	ErrMissingSender = errors.New("no sender address could be resolved")

	// ErrNoRecipient indicates a message ended up without a recipient address.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrSendFailed indicates the transport failed to deliver a message.
	ErrSendFailed = errors.New("failed to send message")
)
