package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a title into a URL-safe slug.
// "Crème Brûlée (Classic)" -> "creme-brulee-classic"
func GenerateSlug(input string) string {
	// Step 1: Strip diacritics
	ascii := RemoveDiacritics(input)

	// Step 2: Lowercase, spaces to hyphens
	lower := strings.ToLower(ascii)
	hyphenated := strings.Join(strings.Fields(lower), "-")

	// Step 3: Keep only a-z, 0-9 and hyphens
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")

	// Step 4: Collapse and trim hyphens
	normalized := slugDashes.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// RemoveDiacritics drops combining marks after NFD decomposition.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	// đ/Đ have no decomposition
	return strings.NewReplacer("đ", "d", "Đ", "D", "ø", "o", "Ø", "O", "ß", "ss").Replace(out)
}
