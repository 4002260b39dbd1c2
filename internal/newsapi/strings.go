package newsapi

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTags = bluemonday.StrictPolicy()

// cleanString strips markup and entities from a title and collapses runs
// of whitespace.
func cleanString(s string) string {
	text := html.UnescapeString(stripTags.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
