package dateutil

import (
	"fmt"
	"sort"
	"time"
)

// MonthKeyLayout is the layout of month bucket keys, e.g. "03/2025".
const MonthKeyLayout = "01/2006"

// MonthKey returns the month bucket key of a date
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// ParseMonthKey parses a "MM/YYYY" key into the first day of that month (UTC)
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// StartOfMonth truncates a date to midnight on the first of its month, keeping the location
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameMonth reports whether two dates fall in the same calendar month
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DistinctMonthKeys returns the distinct month keys of the dates, newest first.
// Keys are ordered chronologically, not lexically, so 01/2026 sorts before 12/2025.
func DistinctMonthKeys(dates []time.Time) []string {
	seen := make(map[string]time.Time)
	for _, d := range dates {
		k := MonthKey(d)
		if _, ok := seen[k]; !ok {
			seen[k] = StartOfMonth(d)
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return seen[keys[i]].After(seen[keys[j]])
	})
	return keys
}

// CountDistinctMonths returns the number of distinct calendar months in dates
func CountDistinctMonths(dates []time.Time) int {
	seen := make(map[string]struct{})
	for _, d := range dates {
		seen[MonthKey(d)] = struct{}{}
	}
	return len(seen)
}
