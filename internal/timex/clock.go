package timex

import "time"

// Clock supplies the current calendar date. Task validation and overdue
// detection depend on it, so tests substitute a FixedClock.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Today returns the current local date at midnight UTC, so that dates parsed
// from YYYY-MM-DD strings compare with it directly.
func (SystemClock) Today() time.Time {
	return DateOf(time.Now())
}

// FixedClock always reports the same day.
type FixedClock struct {
	Day time.Time
}

func (c FixedClock) Today() time.Time {
	return DateOf(c.Day)
}

// DateOf truncates t to its calendar date, expressed in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date is a shorthand for building a calendar date in tests and fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
