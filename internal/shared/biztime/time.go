// Package biztime provides time utilities for the access subsystem.
// All storage and comparison happen in UTC; implicit Local timezone is
// prohibited so that expiry and duplicate-window queries behave identically
// across instances.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateUTC formats a time as a YYYY-MM-DD calendar date in UTC. The daily
// identity hash keys on this value.
func DateUTC(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DaysAgoUTC returns the UTC instant n days before now. Used for rolling
// lookback windows.
func DaysAgoUTC(n int) time.Time {
	return NowUTC().AddDate(0, 0, -n)
}
