package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripTags removes all HTML markup and resolves character entities,
// returning plain text. Use for deriving a text/plain alternative from an
// HTML email body.
func StripTags(s string) string {
	initPolicy()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
