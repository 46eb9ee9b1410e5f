// Package textutil holds the text shaping helpers used by the page views:
// truncation, plain-text extraction, reading time, search sanitizing and slugs.
package textutil

import "unicode"

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Truncate shortens text to at most maxLength characters (runes), cutting at the
// last whitespace inside the limit so words are not split, and appends "...".
// When there is no usable whitespace the text is cut hard at maxLength.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	cut := runes[:maxLength]
	for i := len(cut) - 1; i > 0; i-- {
		if unicode.IsSpace(cut[i]) {
			return string(cut[:i]) + Ellipsis
		}
	}
	return string(cut) + Ellipsis
}
