// Package intake implements the form submission endpoint: it parses a
// contact or loan-application submission, validates it against a
// configurable required-field policy, renders an HTML notification email,
// and dispatches it once through an injected mailer.Sender.
package intake
