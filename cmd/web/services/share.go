package services

import (
	"net/url"
	"strings"

	"bangla-news/cmd/web/dto"
)

// encodeURIComponent escapes s the way browsers do for a query value,
// spaces as %20 rather than +.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ShareLinks returns the social share targets for a page.
func ShareLinks(pageURL, title string) []dto.ShareLinkDTO {
	u := encodeURIComponent(pageURL)
	t := encodeURIComponent(title)
	return []dto.ShareLinkDTO{
		{Network: "facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Network: "twitter", URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + t},
		{Network: "whatsapp", URL: "https://wa.me/?text=" + t + "%20" + u},
		{Network: "linkedin", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
		{Network: "telegram", URL: "https://t.me/share/url?url=" + u + "&text=" + t},
	}
}
