package util

import (
	"time"
)

// DateAtClock returns the given wall clock time on the calendar day of date, in date's location
func DateAtClock(date time.Time, hour int, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
