package textutil

import (
	"strings"
	"unicode"

	"bangla-news/locale"
)

// SanitizeSearchQuery keeps only Bangla letters, ASCII word characters and
// whitespace, collapses whitespace runs to a single space and trims the ends.
// Applying it twice gives the same result as applying it once.
func SanitizeSearchQuery(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingSpace := false
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case isASCIIWord(r) || locale.IsBangla(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
