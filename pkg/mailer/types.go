package mailer

import "fmt"

// Tags carries provider-specific message tags as name-value pairs.
// Presence-only tags (value struct{}{}) are converted by each adapter.
type Tags map[string]any

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared message ready for sending.
type Email struct {
	Tags    Tags     // Provider-specific tags/categories
	Subject string   // Message subject
	HTML    string   // HTML body content
	Text    string   // Plain text alternative (optional)
	From    string   // Override the transport's default sender
	ReplyTo string   // Reply-to address
	To      []string // Recipients (at least one required)
}

// Validate reports whether the email carries everything a transport needs.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
