package time_parser

import "time"

// ParseDate converts user-supplied date strings to a UTC time.Time.
// Supported formats, in order of preference:
//   - "2006-01-02" (HTML date inputs)
//   - RFC3339 and "2006-01-02T15:04:05" (API clients sending full timestamps)
//
// Returns false when the value cannot be parsed.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	formats := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of t's day in UTC, so inclusive
// "to" bounds cover the whole day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
