package textutil

import (
	"strings"

	"bangla-news/models"
)

// ExtractPlainText flattens a Portable Text body: the spans of each text block
// are concatenated and blocks are joined with a single space. Images, code and
// other non-text blocks contribute an empty string.
func ExtractPlainText(body models.Body) string {
	if len(body) == 0 {
		return ""
	}
	parts := make([]string, len(body))
	for i, block := range body {
		if !block.IsText() || len(block.Children) == 0 {
			continue
		}
		var b strings.Builder
		for _, span := range block.Children {
			b.WriteString(span.Text)
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}

// GenerateExcerpt builds a fallback excerpt from an article body.
func GenerateExcerpt(body models.Body, maxLength int) string {
	return Truncate(ExtractPlainText(body), maxLength)
}
