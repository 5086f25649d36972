package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// EventContent strips unsafe markup from an event's rich-text content.
// Applied once when an event is created or updated, never on read.
func EventContent(html string) string {
	return policy.Sanitize(html)
}
