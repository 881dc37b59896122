package picks

import (
	"strings"
	"unicode"
)

// initialsPlaceholder is shown when a title has no usable characters.
const initialsPlaceholder = "•"

// BuildInitials returns the one or two character glyph shown in a pick tile.
func BuildInitials(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, title)

	words := strings.Fields(cleaned)
	switch len(words) {
	case 0:
		return initialsPlaceholder
	case 1:
		w := words[0]
		if len(w) > 2 {
			w = w[:2]
		}
		return strings.ToUpper(w)
	}
	return strings.ToUpper(words[0][:1] + words[1][:1])
}
