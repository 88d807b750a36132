package datetime

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	defaultOnce sync.Once
	defaultR    *Resolver
)

// Default returns the process-wide Resolver used by the package-level functions
func Default() *Resolver {
	defaultOnce.Do(func() { defaultR = New() })
	return defaultR
}

// Resolve calls Default().Resolve
func Resolve(date CalendarDate, hour HourSelector, zone string) (time.Time, error) {
	return Default().Resolve(date, hour, zone)
}

// ResolveFromText calls Default().ResolveFromText
func ResolveFromText(text, format string, hour HourSelector, zone string) (time.Time, error) {
	return Default().ResolveFromText(text, format, hour, zone)
}

// ResolveAmerican calls Default().ResolveAmerican
func ResolveAmerican(text string, hour HourSelector, zone string) (time.Time, error) {
	return Default().ResolveAmerican(text, hour, zone)
}

// ResolveISO calls Default().ResolveISO
func ResolveISO(text string, hour HourSelector, zone string) (time.Time, error) {
	return Default().ResolveISO(text, hour, zone)
}

// FromEpochSeconds calls Default().FromEpochSeconds
func FromEpochSeconds(sec uint64) time.Time { return Default().FromEpochSeconds(sec) }

// FromOffsetText calls Default().FromOffsetText
func FromOffsetText(text string, offsetMinutes int) (time.Time, error) {
	return Default().FromOffsetText(text, offsetMinutes)
}

// ConstructExact calls Default().ConstructExact
func ConstructExact(year, month, day, hour, minute, second int) (time.Time, bool) {
	return Default().ConstructExact(year, month, day, hour, minute, second)
}

// FromTimestamptz calls Default().FromTimestamptz
func FromTimestamptz(ts pgtype.Timestamptz) (time.Time, error) {
	return Default().FromTimestamptz(ts)
}
