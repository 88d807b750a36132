package datetime

import (
	"fmt"

	perr "tzresolve/internal/platform/errors"
)

// EndOfDayMillis is the sub-second part used for EndOfDay (23:59:59.999)
const EndOfDayMillis = 999

// HourSelector picks the wall clock time on a date: a whole hour or the
// last millisecond of the day. The zero value is midnight
type HourSelector struct {
	hour     uint8
	endOfDay bool
}

// At selects h:00:00.000, h must be 0..23
func At(h int) (HourSelector, error) {
	if h < 0 || h > 23 {
		return HourSelector{}, perr.WithField(perr.InvalidArgf("hour %d outside 0..23", h), "hour")
	}
	return HourSelector{hour: uint8(h)}, nil
}

// MustAt is At for constant hours; it panics on an invalid hour
func MustAt(h int) HourSelector {
	s, err := At(h)
	if err != nil {
		panic(err)
	}
	return s
}

// EndOfDay selects 23:59:59.999
func EndOfDay() HourSelector { return HourSelector{hour: 23, endOfDay: true} }

// HourHint maps the integer hour convention where any value of 24 or more
// means end of day
func HourHint(h uint) HourSelector {
	if h >= 24 {
		return EndOfDay()
	}
	return HourSelector{hour: uint8(h)}
}

// IsEndOfDay reports whether s selects the last millisecond of the day
func (s HourSelector) IsEndOfDay() bool { return s.endOfDay }

// Hour returns the selected hour, 23 for end of day
func (s HourSelector) Hour() int { return int(s.hour) }

func (s HourSelector) String() string {
	if s.endOfDay {
		return "end-of-day"
	}
	return fmt.Sprintf("%02d:00", s.hour)
}

func (s HourSelector) clock() (h, m, sec, ns int) {
	if s.endOfDay {
		return 23, 59, 59, EndOfDayMillis * 1_000_000
	}
	return int(s.hour), 0, 0, 0
}
