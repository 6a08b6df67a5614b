package intake

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/martinettechnologies/easyway-backend/pkg/mailer"
)

// Service handles form submissions: validate, render, dispatch once.
type Service struct {
	sender    mailer.Sender
	log       *slog.Logger
	recipient string
	policy    Policy
}

// NewService creates the intake service. The sender and recipient address
// are fixed for the process lifetime; the policy decides which fields are
// required and the fallback subject.
func NewService(sender mailer.Sender, recipient string, policy Policy, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		sender:    sender,
		recipient: recipient,
		policy:    policy,
		log:       log,
	}
}

// Handle validates a submission and forwards it as an email notification.
// It returns the transport message ID (empty when the transport assigns
// none). Exactly one send is attempted per valid submission; validation
// failure means the sender is never invoked.
func (s *Service) Handle(ctx context.Context, sub Submission) (string, error) {
	if err := s.policy.Validate(sub); err != nil {
		return "", err
	}

	email := &mailer.Email{
		To:      []string{s.recipient},
		ReplyTo: sub.Email,
		Subject: Subject(sub.SourcePage, sub.Name, s.policy.DefaultSubject),
		HTML:    renderHTML(sub),
		Text:    renderText(sub),
		Tags:    mailer.Tags{"source": sourceTag(sub.SourcePage)},
	}
	if err := email.Validate(); err != nil {
		return "", errors.Join(mailer.ErrSendFailed, err)
	}

	id, err := s.sender.Send(ctx, email)
	if err != nil {
		return "", errors.Join(mailer.ErrSendFailed, err)
	}

	return id, nil
}

// sourceTag normalizes a source page into the tag charset mail providers
// accept (ASCII letters, digits, underscore, dash). Absent or fully
// unmappable source pages become "website", matching the rendered footer
// placeholder.
func sourceTag(source string) string {
	var b strings.Builder
	var lastDash bool
	for _, r := range strings.ToLower(source) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-':
			if b.Len() > 0 && !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	tag := strings.TrimSuffix(b.String(), "-")
	if tag == "" {
		return "website"
	}
	return tag
}
