package interval

import (
	"time"
)

// BucketTime normalizes a timestamp to the start of its interval bucket.
func (i Interval) BucketTime(timestamp time.Time) time.Time {
	switch i.Name {
	case "1d":
		// Start of day in the timestamp's location.
		return time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, timestamp.Location())
	case "1w":
		// Start of week (Monday) in the timestamp's location.
		days := int(timestamp.Weekday())
		if days == 0 { // Sunday
			days = 7
		}
		monday := timestamp.AddDate(0, 0, 1-days)
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
	default:
		return timestamp.Truncate(i.Duration)
	}
}

// BucketRange returns the start and end time of the interval bucket.
func (i Interval) BucketRange(timestamp time.Time) (start, end time.Time) {
	start = i.BucketTime(timestamp)
	end = start.Add(i.Duration)
	return start, end
}

// SameBucket checks if two timestamps fall within the same bucket.
func (i Interval) SameBucket(timestamp1, timestamp2 time.Time) bool {
	return i.BucketTime(timestamp1).Equal(i.BucketTime(timestamp2))
}
