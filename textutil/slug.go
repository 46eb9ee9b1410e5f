package textutil

import (
	"sort"
	"strings"

	"bangla-news/locale"
)

// CategorySlugs maps Bangla section names to their English URL form.
var CategorySlugs = map[string]string{
	"জাতীয়":       "national",
	"আন্তর্জাতিক": "international",
	"রাজনীতি":     "politics",
	"খেলা":        "sports",
	"ব্যবসা":       "business",
	"বিনোদন":      "entertainment",
	"প্রযুক্তি":     "technology",
	"লাইফস্টাইল":  "lifestyle",
	"মতামত":       "opinion",
}

// slugReplacer applies CategorySlugs longest term first so the output does not
// depend on map iteration order.
var slugReplacer = newSlugReplacer(CategorySlugs)

func newSlugReplacer(terms map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, terms[k])
	}
	return strings.NewReplacer(pairs...)
}

// GenerateSlug turns a (possibly Bangla) title into a URL slug. ASCII letters
// are lower-cased, known section names become their English slug, and every
// rune that is not a-z, 0-9 or Bangla becomes a single "-".
func GenerateSlug(title string) string {
	s := slugReplacer.Replace(asciiLower(title))

	var b strings.Builder
	b.Grow(len(s))
	lastWasDash := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || locale.IsBangla(r):
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteByte('-')
				lastWasDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
