package picks

import (
	"regexp"
	"strings"
)

var (
	// Straight and curly double quotes, and the apostrophe.
	quoteChars = regexp.MustCompile(`[“”"']`)

	// Anything that is not an ASCII word character, whitespace or hyphen.
	nonKeyChars = regexp.MustCompile(`[^\w\s-]`)
)

// Normalize projects a title onto the join key shared by headings and
// product records. Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = collapseSpace(s)
	s = quoteChars.ReplaceAllString(s, "")
	s = nonKeyChars.ReplaceAllString(s, "")
	// Stripping can leave doubled or trailing spaces ("a & b").
	return collapseSpace(s)
}

// collapseSpace trims s and replaces each whitespace run with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
