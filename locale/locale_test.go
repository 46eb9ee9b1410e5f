package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToBanglaDigits(t *testing.T) {
	assert.Equal(t, "১২৩৪৫", ToBanglaDigits(12345))
	assert.Equal(t, "০", ToBanglaDigits(0))
	assert.Equal(t, "-৭", ToBanglaDigits(int64(-7)))
	assert.Equal(t, "পাতা ৩/১০", ToBanglaDigits("পাতা 3/10"))
	assert.Equal(t, "abc", ToBanglaDigits("abc"))
}

func TestFromBanglaDigitsRoundTrip(t *testing.T) {
	for _, s := range []string{"12345", "0", "2024-01-31", "no digits"} {
		assert.Equal(t, s, FromBanglaDigits(ToBanglaDigits(s)))
	}
}

func TestContainsBangla(t *testing.T) {
	assert.True(t, ContainsBangla("hello খবর"))
	assert.False(t, ContainsBangla("hello world"))
	assert.False(t, ContainsBangla(""))
}

func TestFormatDate(t *testing.T) {
	// 2024-03-05 was a Tuesday.
	ts := time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC)

	assert.Equal(t, "০৫ মার্চ ২০২৪", FormatDate(ts, LayoutLongDate))
	assert.Equal(t, "মঙ্গলবার, ০৫ মার্চ ২০২৪", FormatDate(ts, LayoutToday))
	assert.Equal(t, "৫ মার্চ, ০৯:০৭", FormatDate(ts, "D MMM, HH:mm"))
	assert.Equal(t, "জানুয়ারি", MonthName(time.January))
	assert.Equal(t, "শুক্রবার", WeekdayName(time.Friday))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		target time.Time
		want   string
		bucket Bucket
	}{
		{name: "zero time", target: time.Time{}, want: "এখনই", bucket: BucketJustNow},
		{name: "future", target: now.Add(time.Hour), want: "এখনই", bucket: BucketJustNow},
		{name: "seconds", target: now.Add(-30 * time.Second), want: "এখনই", bucket: BucketJustNow},
		{name: "one minute", target: now.Add(-time.Minute), want: "১ মিনিট আগে", bucket: BucketMinutes},
		{name: "59 minutes", target: now.Add(-59 * time.Minute), want: "৫৯ মিনিট আগে", bucket: BucketMinutes},
		{name: "hours floor", target: now.Add(-(2*time.Hour + 59*time.Minute)), want: "২ ঘন্টা আগে", bucket: BucketHours},
		{name: "23 hours", target: now.Add(-23 * time.Hour), want: "২৩ ঘন্টা আগে", bucket: BucketHours},
		{name: "one day", target: now.Add(-24 * time.Hour), want: "১ দিন আগে", bucket: BucketDays},
		{name: "six days", target: now.Add(-(6*24*time.Hour + 23*time.Hour)), want: "৬ দিন আগে", bucket: BucketDays},
		{name: "a week", target: now.Add(-7 * 24 * time.Hour), want: "১৩ জুন ২০২৪", bucket: BucketAbsolute},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			bucket, _ := Elapsed(testCase.target, now)
			assert.Equal(t, testCase.bucket, bucket)
			assert.Equal(t, testCase.want, RelativeTime(testCase.target, now))
		})
	}
}

func TestFormatViewCount(t *testing.T) {
	testCases := []struct {
		in   int64
		want string
	}{
		{in: -5, want: "০"},
		{in: 0, want: "০"},
		{in: 999, want: "৯৯৯"},
		{in: 1000, want: "১হাজার"},
		{in: 1500, want: "১হাজার"},
		{in: 99_999, want: "৯৯হাজার"},
		{in: 100_000, want: "১লাখ"},
		{in: 250_000, want: "২লাখ"},
		{in: 9_999_999, want: "৯৯লাখ"},
		{in: 10_000_000, want: "১কোটি"},
		{in: 123_000_000, want: "১২কোটি"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.want, FormatViewCount(testCase.in), "views=%d", testCase.in)
	}
}

func TestFormatReadCountAndTotal(t *testing.T) {
	assert.Equal(t, "", FormatReadCount(0))
	assert.Equal(t, "১২ বার পড়া হয়েছে", FormatReadCount(12))
	assert.Equal(t, "মোট ৪৫টি নিবন্ধ", FormatArticleTotal(45))
	assert.Equal(t, "মোট ০টি নিবন্ধ", FormatArticleTotal(-1))
}
