package datetime

import (
	"fmt"
	"math"
	"time"

	"tzresolve/internal/core/normalize"
	perr "tzresolve/internal/platform/errors"
)

// maxEpochSeconds is the last UNIX second a time.Time can hold
const maxEpochSeconds = math.MaxInt64 - 62135596800

// MaxOffsetMinutes bounds FromOffsetText offsets to ±23:59
const MaxOffsetMinutes = 23*60 + 59

const offsetLayout = "2006-01-02 15:04:05.999999999-0700"

// FromEpochSeconds returns the local instant sec seconds after 1970-01-01T00:00:00Z.
// Values beyond what time.Time can hold saturate
func (r *Resolver) FromEpochSeconds(sec uint64) time.Time {
	if sec > maxEpochSeconds {
		sec = maxEpochSeconds
	}
	return time.Unix(int64(sec), 0).In(r.Local())
}

// OffsetSuffix renders a signed minute offset as ±HHMM
func OffsetSuffix(offsetMinutes int) (string, error) {
	if offsetMinutes < -MaxOffsetMinutes || offsetMinutes > MaxOffsetMinutes {
		return "", perr.WithField(perr.Parsef("offset %d minutes outside ±23:59", offsetMinutes), "offset_minutes")
	}
	sign := '+'
	if offsetMinutes < 0 {
		sign, offsetMinutes = '-', -offsetMinutes
	}
	return fmt.Sprintf("%c%02d%02d", sign, offsetMinutes/60, offsetMinutes%60), nil
}

// FromOffsetText parses "YYYY-MM-DD HH:MM:SS[.fff]" whose UTC offset was
// stripped by the producer, splicing offsetMinutes back on, and returns the
// local instant
func (r *Resolver) FromOffsetText(text string, offsetMinutes int) (time.Time, error) {
	suffix, err := OffsetSuffix(offsetMinutes)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(offsetLayout, normalize.Text(text)+suffix)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeParse, "parse %q as timestamp", text), "text")
	}
	return t.In(r.Local()), nil
}

// ConstructExact builds a local instant from explicit fields. It reports false
// when the fields do not form a valid date and time or the wall clock falls
// in a local DST gap. Overlaps resolve to the earlier instant
func (r *Resolver) ConstructExact(year, month, day, hour, minute, second int) (time.Time, bool) {
	d := CalendarDate{Year: year, Month: time.Month(month), Day: day}
	if !d.Valid() || hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}, false
	}
	local := r.Local()
	first, ok := Interpret(time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), local).Earliest()
	if !ok {
		return time.Time{}, false
	}
	return first.In(local), true
}
