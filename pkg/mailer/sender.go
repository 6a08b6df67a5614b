package mailer

import "context"

// Sender is the minimal interface an email transport must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message and returns the provider-assigned
	// message ID. Transports without message IDs (SMTP) return an empty
	// string. A non-nil error means delivery was not accepted.
	Send(ctx context.Context, email *Email) (string, error)
}
