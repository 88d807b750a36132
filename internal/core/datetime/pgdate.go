package datetime

import (
	"time"

	perr "tzresolve/internal/platform/errors"

	"github.com/jackc/pgx/v5/pgtype"
)

// PostgreSQL date and timestamptz bounds (4714-11-24 BC is astronomical year -4713)
var (
	pgMinDate        = CalendarDate{Year: -4713, Month: time.November, Day: 24}
	pgMaxDate        = CalendarDate{Year: 5874897, Month: time.December, Day: 31}
	pgMinTimestamptz = time.Date(-4713, time.November, 24, 0, 0, 0, 0, time.UTC)
	pgMaxTimestamptz = time.Date(294276, time.December, 31, 23, 59, 59, 999999000, time.UTC)
)

func (d CalendarDate) before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func checkPGDate(d CalendarDate) error {
	if !d.Valid() {
		return perr.WithField(perr.InvalidDatef("%s is not a calendar date", d), "date")
	}
	if d.before(pgMinDate) || pgMaxDate.before(d) {
		return perr.WithField(perr.InvalidDatef("%s outside PostgreSQL date range %s..%s", d, pgMinDate, pgMaxDate), "date")
	}
	return nil
}

// ToPGDate converts d to a pgtype.Date
func ToPGDate(d CalendarDate) (pgtype.Date, error) {
	if err := checkPGDate(d); err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: d.midnight(time.UTC), Valid: true}, nil
}

// FromPGDate converts a pgtype.Date to a CalendarDate; NULL and infinite dates fail
func FromPGDate(pd pgtype.Date) (CalendarDate, error) {
	if !pd.Valid {
		return CalendarDate{}, perr.WithField(perr.InvalidDatef("date is NULL"), "date")
	}
	if pd.InfinityModifier != pgtype.Finite {
		return CalendarDate{}, perr.WithField(perr.InvalidDatef("date is %s", pd.InfinityModifier), "date")
	}
	d := DateOf(pd.Time)
	if err := checkPGDate(d); err != nil {
		return CalendarDate{}, err
	}
	return d, nil
}

// ToTimestamptz converts t to a pgtype.Timestamptz at microsecond precision
func ToTimestamptz(t time.Time) (pgtype.Timestamptz, error) {
	if t.IsZero() {
		return pgtype.Timestamptz{}, perr.WithField(perr.InvalidDatef("zero time"), "time")
	}
	if err := checkTimestamptz(t); err != nil {
		return pgtype.Timestamptz{}, err
	}
	return pgtype.Timestamptz{Time: t.Truncate(time.Microsecond), Valid: true}, nil
}

// FromTimestamptz converts ts to a local instant; NULL and infinite values fail
func (r *Resolver) FromTimestamptz(ts pgtype.Timestamptz) (time.Time, error) {
	if !ts.Valid {
		return time.Time{}, perr.WithField(perr.InvalidDatef("timestamptz is NULL"), "time")
	}
	if ts.InfinityModifier != pgtype.Finite {
		return time.Time{}, perr.WithField(perr.InvalidDatef("timestamptz is %s", ts.InfinityModifier), "time")
	}
	if err := checkTimestamptz(ts.Time); err != nil {
		return time.Time{}, err
	}
	return ts.Time.In(r.Local()), nil
}

func checkTimestamptz(t time.Time) error {
	if t.Before(pgMinTimestamptz) || t.After(pgMaxTimestamptz) {
		return perr.WithField(perr.InvalidDatef("%s outside PostgreSQL timestamptz range", t.UTC().Format(time.RFC3339)), "time")
	}
	return nil
}
