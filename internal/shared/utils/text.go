package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// EmailPattern is the basic local@domain.tld shape accepted on write paths.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CleanText prepares user supplied plain text for storage. The text is kept
// as sent apart from surrounding whitespace and control characters (a NUL
// byte cannot be stored in a jsonb value). Escaping is left to the renderer.
func CleanText(input string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(cleaned)
}

// SanitizeHTML keeps formatting markup (lists, paragraphs, links) in rich
// text fields and drops scripts, event handlers and unsafe URLs.
func SanitizeHTML(input string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(input))
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
