package intake

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"
)

// Submission is the transient form payload for one inbound request.
// It is built from the request body and discarded once the notification
// call returns; nothing is persisted.
type Submission struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	LoanType   string `json:"loanType"`
	SourcePage string `json:"sourcePage"`
}

// ParseSubmission reads a submission from a JSON or form-encoded request
// body. Leading and trailing whitespace is trimmed from every field so a
// blank-padded value does not pass the required-field check.
func ParseSubmission(r *http.Request) (Submission, error) {
	var sub Submission

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch contentType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseForm(); err != nil {
			return sub, errors.Join(ErrMalformedBody, err)
		}
		sub = Submission{
			Name:       r.PostFormValue("name"),
			Email:      r.PostFormValue("email"),
			Phone:      r.PostFormValue("phone"),
			Message:    r.PostFormValue("message"),
			LoanType:   r.PostFormValue("loanType"),
			SourcePage: r.PostFormValue("sourcePage"),
		}
	default:
		// JSON is the primary shape the front-end sends.
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, errors.Join(ErrMalformedBody, err)
		}
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.LoanType = strings.TrimSpace(sub.LoanType)
	sub.SourcePage = strings.TrimSpace(sub.SourcePage)

	return sub, nil
}
