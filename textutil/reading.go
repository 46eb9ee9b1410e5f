package textutil

import (
	"strings"

	"bangla-news/locale"
)

// WordsPerMinute is the assumed reading speed.
const WordsPerMinute = 200

// ReadingMinutes returns ceil(words/WordsPerMinute), never less than 1.
func ReadingMinutes(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// EstimateReadingTime renders the reading time, e.g. "২ মিনিট পড়ার সময়".
func EstimateReadingTime(text string) string {
	return locale.ToBanglaDigits(ReadingMinutes(text)) + " মিনিট পড়ার সময়"
}
