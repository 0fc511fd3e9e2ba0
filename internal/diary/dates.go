package diary

import (
	"sort"
	"time"
)

// ScrapsBucket is the reserved date key for items that belong to the diary
// as a whole rather than to a specific day or month.
const ScrapsBucket = "scraps"

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// IsDayKey reports whether s is a canonical day key (YYYY-MM-DD).
func IsDayKey(s string) bool {
	t, err := time.Parse(dayLayout, s)
	return err == nil && t.Format(dayLayout) == s
}

// IsMonthKey reports whether s is a canonical month key (YYYY-MM).
func IsMonthKey(s string) bool {
	t, err := time.Parse(monthLayout, s)
	return err == nil && t.Format(monthLayout) == s
}

// MonthOf returns the month key containing the given day key, or the key
// itself if it is already a month key. ScrapsBucket maps to itself.
func MonthOf(key string) string {
	if IsDayKey(key) {
		return key[:len(monthLayout)]
	}
	return key
}

// ParseDay parses a day key into a time.Time (UTC midnight).
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay returns the canonical day key for t.
func FormatDay(t time.Time) string { return t.Format(dayLayout) }

// FormatMonth returns the canonical month key for t.
func FormatMonth(t time.Time) string { return t.Format(monthLayout) }

// SortKeys sorts date keys in place. Canonical keys sort chronologically
// because the layouts are lexicographically ordered.
func SortKeys(keys []string) {
	sort.Strings(keys)
}
