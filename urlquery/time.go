package urlquery

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// searchWindow is the default span of a search range when no lower bound is
// given.
const searchWindow = 30 * 24 * time.Hour

// parseTime interprets a free-form date string. Strings without zone
// information are taken as UTC, never local time.
func parseTime(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to convert time to timestamp: %s", s)
	}
	return t.UTC(), nil
}

// parseTimestamp converts a free-form date string into Unix epoch seconds.
func parseTimestamp(s string) (int64, error) {
	t, err := parseTime(s)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// previousSlice returns an instant inside the most recently completed feed
// slice: one interval unit before now. Slices are half-open, [start, end), so
// an instant exactly on a boundary belongs to the slice it begins.
func previousSlice(now time.Time, interval string) int64 {
	switch interval {
	case "day":
		now = now.Add(-24 * time.Hour)
	default:
		now = now.Add(-time.Hour)
	}
	return now.UTC().Unix()
}
