package intake

import (
	"fmt"
	"strings"
)

// Placeholders for optional fields in the rendered notification.
const (
	placeholderPhone    = "Not provided"
	placeholderLoanType = "Not specified"
	placeholderSource   = "Website"
)

// escapeHTML escapes the characters that would open markup inside the email
// body. The set is deliberately minimal: the values land in element content,
// never in attributes.
var escapeHTML = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
).Replace

// renderHTML builds the HTML fragment for the notification email. Every
// user-supplied value is escaped; newlines in the message become <br> in
// this rendering only.
func renderHTML(s Submission) string {
	phone := placeholderPhone
	if s.Phone != "" {
		phone = escapeHTML(s.Phone)
	}
	loanType := placeholderLoanType
	if s.LoanType != "" {
		loanType = escapeHTML(s.LoanType)
	}
	source := placeholderSource
	if s.SourcePage != "" {
		source = escapeHTML(s.SourcePage)
	}

	message := escapeHTML(normalizeNewlines(s.Message))
	message = strings.ReplaceAll(message, "\n", "<br>")

	var b strings.Builder
	b.WriteString("<h2>New Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", escapeHTML(s.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", escapeHTML(s.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", phone)
	fmt.Fprintf(&b, "<p><strong>Loan Type:</strong> %s</p>\n", loanType)
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", message)
	b.WriteString("<hr>\n")
	fmt.Fprintf(&b, "<p><em>Submitted via %s</em></p>\n", source)
	return b.String()
}

// renderText builds the plain-text counterpart. Values are kept raw and
// newlines are preserved; no HTML conversion applies here.
func renderText(s Submission) string {
	phone := placeholderPhone
	if s.Phone != "" {
		phone = s.Phone
	}
	loanType := placeholderLoanType
	if s.LoanType != "" {
		loanType = s.LoanType
	}
	source := placeholderSource
	if s.SourcePage != "" {
		source = s.SourcePage
	}

	var b strings.Builder
	b.WriteString("New Form Submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Loan Type: %s\n", loanType)
	fmt.Fprintf(&b, "Message:\n%s\n\n", normalizeNewlines(s.Message))
	fmt.Fprintf(&b, "Submitted via %s\n", source)
	return b.String()
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
