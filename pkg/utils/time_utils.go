package utils

import "time"

// HourBucket maps an hour of day onto the coarse bucket the time-of-day
// affinity tables are keyed by.
func HourBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 6 && h < 10:
		return "morning"
	case h >= 10 && h < 14:
		return "midday"
	case h >= 14 && h < 18:
		return "afternoon"
	case h >= 18 && h < 22:
		return "evening"
	default:
		return "night"
	}
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatRFC3339 renders t for API responses, "" for the zero time.
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
