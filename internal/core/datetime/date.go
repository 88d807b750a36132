// Package datetime turns partially specified dates into local instants.
//
// A CalendarDate plus an HourSelector, optionally qualified by an IANA zone,
// resolves to exactly one instant expressed in the process local zone.
// Daylight saving edges follow a fixed policy: a wall clock that does not
// exist (spring-forward gap) is a conversion error, a wall clock that exists
// twice (fall-back overlap) resolves to the earlier instant.
package datetime

import (
	"fmt"
	"time"

	perr "tzresolve/internal/platform/errors"
)

// CalendarDate is a proleptic Gregorian year, month and day with no time or zone
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate validates the fields, it never rolls an overflowing day into the next month
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	d := CalendarDate{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return CalendarDate{}, perr.WithField(perr.InvalidDatef("%s is not a calendar date", d), "date")
	}
	return d, nil
}

// DateOf returns the wall date of t in its own location
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// DaysIn returns the number of days in month of year
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeap reports whether year is a Gregorian leap year
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Valid reports whether month is 1..12 and day exists in that month
func (d CalendarDate) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// Weekday returns the day of the week, d must be valid
func (d CalendarDate) Weekday() time.Weekday {
	return d.midnight(time.UTC).Weekday()
}

// YearDay returns the ordinal day in 1..366, d must be valid
func (d CalendarDate) YearDay() int {
	return d.midnight(time.UTC).YearDay()
}

// String renders YYYY-MM-DD, with a leading '-' for years before 1 BC
func (d CalendarDate) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Wall returns the naive wall clock of d at the selected hour. The result is
// tagged UTC only so it can be carried in a time.Time; it denotes no instant
func (d CalendarDate) Wall(h HourSelector) time.Time {
	hh, mm, ss, ns := h.clock()
	return time.Date(d.Year, d.Month, d.Day, hh, mm, ss, ns, time.UTC)
}

func (d CalendarDate) midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// dateFromYearDay maps an ordinal day onto a date
func dateFromYearDay(year, yday int) (CalendarDate, bool) {
	days := 365
	if IsLeap(year) {
		days = 366
	}
	if yday < 1 || yday > days {
		return CalendarDate{}, false
	}
	return DateOf(time.Date(year, time.January, yday, 0, 0, 0, 0, time.UTC)), true
}
