package timestamp

import "time"

// Date holds the UTC calendar fields used to build destination paths.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf converts t to UTC and returns its proleptic Gregorian calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return Date{Year: year, Month: month, Day: day}
}
