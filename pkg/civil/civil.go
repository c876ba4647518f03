// Package civil provides calendar-date values and the grid arithmetic the
// picker is built on. Dates carry no time of day and no location; two dates
// are equal exactly when their year, month and day fields are equal.
package civil

import (
	"fmt"
	"time"
)

// Date is a civil calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its fields.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime captures the calendar fields of t, discarding time of day and
// location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current date in the local location.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns the date at midnight UTC, for use with time arithmetic.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare returns -1, 0 or 1 as d sorts before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// SameDay reports field-wise equality.
func SameDay(a, b Date) bool { return a == b }

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b Date) bool { return a.Year == b.Year && a.Month == b.Month }

// SameYear reports whether a and b fall in the same year.
func SameYear(a, b Date) bool { return a.Year == b.Year }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// FirstOfMonth returns the first day of d's month.
func FirstOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// FirstOfYear returns January 1 of d's year.
func FirstOfYear(d Date) Date {
	return Date{Year: d.Year, Month: time.January, Day: 1}
}

// DecadeStart returns the first year of the decade containing year,
// e.g. 1987 -> 1980.
func DecadeStart(year int) int {
	if year >= 0 {
		return year / 10 * 10
	}
	return -((-year + 9) / 10 * 10)
}

// MonthGrid returns the ordered dates a month page renders: from the most
// recent Sunday on or before the 1st of the month through enough trailing
// days to complete full weeks past the month's last day. The result is
// always a multiple of seven long; callers distinguish leading/trailing
// out-of-month cells with SameMonth.
func MonthGrid(year int, month time.Month) []Date {
	first := Date{Year: year, Month: month, Day: 1}
	start := first.AddDays(-int(first.Weekday()))

	span := int(first.Weekday()) + DaysIn(year, month)
	weeks := (span + 6) / 7

	cells := make([]Date, 0, weeks*7)
	for i := 0; i < weeks*7; i++ {
		cells = append(cells, start.AddDays(i))
	}
	return cells
}
