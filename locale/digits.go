// Package locale formats numbers and dates for the Bangla edition of the site.
package locale

import (
	"fmt"
	"strings"
)

var banglaDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// Digit is the set of values ToBanglaDigits accepts.
type Digit interface {
	~int | ~int32 | ~int64 | ~string
}

// ToBanglaDigits maps every ASCII digit of v to the Bangla digit glyph.
// Everything that is not 0-9 passes through unchanged.
func ToBanglaDigits[T Digit](v T) string {
	return replaceDigits(fmt.Sprint(v))
}

func replaceDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(banglaDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FromBanglaDigits is the inverse of ToBanglaDigits.
func FromBanglaDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '০' && r <= '৯' {
			b.WriteRune('0' + (r - '০'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsBangla reports whether text has at least one rune of the Bengali block.
func ContainsBangla(text string) bool {
	for _, r := range text {
		if IsBangla(r) {
			return true
		}
	}
	return false
}

// IsBangla reports whether r is in the Bengali Unicode block (U+0980..U+09FF).
func IsBangla(r rune) bool {
	return r >= 0x0980 && r <= 0x09FF
}
