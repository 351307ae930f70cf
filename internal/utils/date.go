package utils

import (
	"time"
)

// dayLayout is the calendar-date format accepted by range queries.
const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD calendar date into midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

// DayRange converts two inclusive calendar dates into a half-open
// timestamp interval [from, to): from is start-of-day on start, to is
// start-of-day on the day after end. start == end covers exactly that
// single day.
func DayRange(start, end time.Time) (time.Time, time.Time) {
	from := StartOfDay(start)
	to := StartOfDay(end).AddDate(0, 0, 1)
	return from, to
}

// StartOfDay returns 00:00:00 UTC of the given time's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
