package intake

// Policy is the configurable required-field set and default subject.
// Name and email are always required. When neither RequirePhone nor
// RequireMessage is set, a submission must still carry at least one of
// phone or message to be worth forwarding.
type Policy struct {
	RequirePhone   bool
	RequireMessage bool

	// DefaultSubject is the subject template used when the source page is
	// unknown. Supports the {name} placeholder. Empty means the built-in
	// default ("New Enquiry from {name}").
	DefaultSubject string
}

// Validate reports ErrMissingFields when the submission does not satisfy
// the policy. No partial processing happens on failure.
func (p Policy) Validate(s Submission) error {
	if s.Name == "" || s.Email == "" {
		return ErrMissingFields
	}
	if p.RequirePhone && s.Phone == "" {
		return ErrMissingFields
	}
	if p.RequireMessage && s.Message == "" {
		return ErrMissingFields
	}
	if !p.RequirePhone && !p.RequireMessage && s.Phone == "" && s.Message == "" {
		return ErrMissingFields
	}
	return nil
}
