package locale

import "time"

// Bucket is the granularity RelativeTime picked for a timestamp.
type Bucket int

const (
	BucketJustNow Bucket = iota
	BucketMinutes
	BucketHours
	BucketDays
	BucketAbsolute
)

func (b Bucket) String() string {
	switch b {
	case BucketJustNow:
		return "just-now"
	case BucketMinutes:
		return "minutes-ago"
	case BucketHours:
		return "hours-ago"
	case BucketDays:
		return "days-ago"
	default:
		return "absolute-date"
	}
}

const justNow = "এখনই"

// Elapsed returns the bucket for target relative to now together with the
// amount in that bucket's unit. A zero target and a target in the future are
// both treated as "just now".
func Elapsed(target, now time.Time) (Bucket, int64) {
	if target.IsZero() {
		return BucketJustNow, 0
	}
	minutes := int64(now.Sub(target) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	switch {
	case minutes < 1:
		return BucketJustNow, 0
	case minutes < 60:
		return BucketMinutes, minutes
	case minutes < 24*60:
		return BucketHours, minutes / 60
	case minutes < 7*24*60:
		return BucketDays, minutes / (24 * 60)
	default:
		return BucketAbsolute, 0
	}
}

// RelativeTime renders how long ago target happened, e.g. "৫ মিনিট আগে".
// Anything a week or older is rendered as a long date.
func RelativeTime(target, now time.Time) string {
	bucket, n := Elapsed(target, now)
	switch bucket {
	case BucketMinutes:
		return ToBanglaDigits(n) + " মিনিট আগে"
	case BucketHours:
		return ToBanglaDigits(n) + " ঘন্টা আগে"
	case BucketDays:
		return ToBanglaDigits(n) + " দিন আগে"
	case BucketAbsolute:
		return FormatDate(target, LayoutLongDate)
	default:
		return justNow
	}
}
