package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CombineDateTime joins a calendar date ("2006-01-02") and a time of day
// ("15:04" or "15:04:05") into a single local instant. The values are naive
// local times; no timezone conversion is applied.
func CombineDateTime(dateStr string, timeStr string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	t, err := time.ParseInLocation(TimeLayout, timeStr, time.Local)
	if err != nil {
		t, err = time.ParseInLocation("15:04:05", timeStr, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q: %w", timeStr, err)
		}
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}
