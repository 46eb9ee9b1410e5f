package locale

import (
	"strings"
	"time"
)

var months = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

var monthsShort = [12]string{
	"জানু", "ফেব", "মার্চ", "এপ্র", "মে", "জুন",
	"জুলাই", "আগ", "সেপ্ট", "অক্ট", "নভে", "ডিসে",
}

var weekdays = [7]string{
	"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার",
}

var weekdaysShort = [7]string{"রবি", "সোম", "মঙ্গল", "বুধ", "বৃহঃ", "শুক্র", "শনি"}

// Layouts used across the site.
const (
	LayoutLongDate = "DD MMMM YYYY"
	LayoutToday    = "dddd, DD MMMM YYYY"
)

// dateTokens is ordered longest first so that "MMMM" wins over "MM".
var dateTokens = []string{"dddd", "ddd", "YYYY", "MMMM", "MMM", "MM", "DD", "HH", "mm", "D", "M"}

// MonthName returns the Bangla name of m.
func MonthName(m time.Month) string {
	return months[m-1]
}

// WeekdayName returns the Bangla name of d.
func WeekdayName(d time.Weekday) string {
	return weekdays[d]
}

// FormatDate renders t with a moment-style layout (DD MMMM YYYY, dddd ...)
// using Bangla month and weekday names. Digits in the output are Bangla.
// Characters that are not part of a token are copied verbatim.
func FormatDate(t time.Time, layout string) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		tok := matchToken(layout[i:])
		if tok == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, tok))
		i += len(tok)
	}
	return replaceDigits(b.String())
}

func matchToken(s string) string {
	for _, tok := range dateTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func renderToken(t time.Time, tok string) string {
	switch tok {
	case "dddd":
		return weekdays[t.Weekday()]
	case "ddd":
		return weekdaysShort[t.Weekday()]
	case "YYYY":
		return t.Format("2006")
	case "MMMM":
		return months[t.Month()-1]
	case "MMM":
		return monthsShort[t.Month()-1]
	case "MM":
		return t.Format("01")
	case "M":
		return t.Format("1")
	case "DD":
		return t.Format("02")
	case "D":
		return t.Format("2")
	case "HH":
		return t.Format("15")
	case "mm":
		return t.Format("04")
	}
	return tok
}
