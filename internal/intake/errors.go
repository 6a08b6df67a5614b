package intake

import "errors"

var (
	// ErrMissingFields indicates a required submission field is missing or
	// empty. Client-caused; never reported as a server fault.
	ErrMissingFields = errors.New("missing required fields")

	// ErrMalformedBody indicates the request body could not be parsed.
	ErrMalformedBody = errors.New("malformed request body")
)
