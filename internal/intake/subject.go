package intake

import "strings"

// DefaultSubject is the subject template applied when the source page is
// unknown and no override is configured.
const DefaultSubject = "New Enquiry from {name}"

// Source page values the front-end forms send.
const (
	SourceApplicationForm = "Application Form"
	SourceContactForm     = "Contact Form"
	SourceHomeContact     = "Home Contact"
)

var subjectBySource = map[string]string{
	SourceApplicationForm: "New Loan Application from {name}",
	SourceContactForm:     "New Contact Request from {name}",
	SourceHomeContact:     "New Enquiry from {name}",
}

// Subject maps a source page to the notification subject line. Unknown or
// absent source pages fall back to the given default template; an empty
// fallback means DefaultSubject.
func Subject(sourcePage, name, fallback string) string {
	tmpl, ok := subjectBySource[sourcePage]
	if !ok {
		tmpl = fallback
		if tmpl == "" {
			tmpl = DefaultSubject
		}
	}
	return strings.ReplaceAll(tmpl, "{name}", name)
}
