// Package mailer defines the email delivery abstraction used by the form
// intake service.
//
// The core type is the Sender interface: it accepts a fully-prepared Email
// and returns the provider-assigned message ID when the transport reports
// one. Two implementations ship with this module:
//
//   - mailer/resend delivers through the Resend HTTP API
//   - mailer/smtp delivers through a plain SMTP relay
//
// The two are interchangeable; callers construct one at startup and inject
// it. Sender implementations must be safe for concurrent use, since a single
// instance is shared across all in-flight requests for the process lifetime.
package mailer
