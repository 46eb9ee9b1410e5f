package locale

const (
	thousand = 1_000
	lakh     = 100_000
	crore    = 10_000_000
)

// FormatViewCount humanizes a view counter with the South Asian tiers
// (হাজার, লাখ, কোটি). Values are floored, never rounded. Negative counts are
// treated as zero.
func FormatViewCount(n int64) string {
	switch {
	case n <= 0:
		return ToBanglaDigits(0)
	case n < thousand:
		return ToBanglaDigits(n)
	case n < lakh:
		return ToBanglaDigits(n/thousand) + "হাজার"
	case n < crore:
		return ToBanglaDigits(n/lakh) + "লাখ"
	default:
		return ToBanglaDigits(n/crore) + "কোটি"
	}
}

// FormatReadCount renders the article-page counter, e.g. "১২ বার পড়া হয়েছে".
// It returns "" when there is nothing to show.
func FormatReadCount(n int64) string {
	if n <= 0 {
		return ""
	}
	return ToBanglaDigits(n) + " বার পড়া হয়েছে"
}

// FormatArticleTotal renders a category total, e.g. "মোট ৪৫টি নিবন্ধ".
func FormatArticleTotal(n int) string {
	if n < 0 {
		n = 0
	}
	return "মোট " + ToBanglaDigits(n) + "টি নিবন্ধ"
}
