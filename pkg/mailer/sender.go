package mailer

import "context"

// Sender defines the minimal interface that mail transports must implement.
// It accepts a fully-prepared Message and handles the actual delivery.
type Sender interface {
	// Send delivers a message. The Message has From, To and at least one
	// of HTML or Text already set. Returns an error if delivery fails.
	Send(ctx context.Context, msg *Message) error
}
