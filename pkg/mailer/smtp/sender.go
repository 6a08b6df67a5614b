package smtp

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/martinettechnologies/easyway-backend/pkg/mailer"
	"github.com/martinettechnologies/easyway-backend/pkg/sanitizer"
)

// Sender implements mailer.Sender over a plain SMTP relay.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. SMTP assigns no message ID, so the returned
// ID is always empty on success.
func (s *Sender) Send(_ context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	envelopeFrom, err := envelopeAddress(from)
	if err != nil {
		return "", fmt.Errorf("smtp: invalid sender address %q: %w", from, err)
	}

	msg, err := buildMessage(from, email)
	if err != nil {
		return "", fmt.Errorf("smtp: failed to build message: %w", err)
	}

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	if err := smtp.SendMail(s.addr(), auth, envelopeFrom, email.To, msg); err != nil {
		return "", fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return "", nil
}

// Ping dials the relay to verify it is reachable. Intended for readiness
// checks; it does not authenticate.
func (s *Sender) Ping(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.addr())
	if err != nil {
		return fmt.Errorf("smtp: relay unreachable: %w", err)
	}
	return conn.Close()
}

func (s *Sender) addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// envelopeAddress extracts the bare address from a possibly display-named
// sender for use in the SMTP MAIL FROM command.
func envelopeAddress(from string) (string, error) {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return "", err
	}
	return addr.Address, nil
}

// buildMessage assembles a multipart/alternative MIME message with a
// text/plain part followed by the text/html part. When the email carries no
// explicit text alternative, one is derived by stripping the HTML markup.
func buildMessage(from string, email *mailer.Email) ([]byte, error) {
	text := email.Text
	if text == "" {
		text = sanitizer.StripTags(email.HTML)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(email.To, ", "))
	if email.ReplyTo != "" {
		// ReplyTo is caller-supplied; parsing rejects CRLF and anything else
		// that would break out of the header block.
		replyTo, err := mail.ParseAddress(email.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("invalid Reply-To address %q: %w", email.ReplyTo, err)
		}
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", replyTo.String())
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", email.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	buf.WriteString("\r\n")

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(text)); err != nil {
		return nil, err
	}

	htmlPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(email.HTML)); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
