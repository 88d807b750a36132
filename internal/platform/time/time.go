// Package time holds the process clock settings shared by the resolver and its callers
package time

import (
	"sync"
	"time"

	"tzresolve/internal/platform/config"
	"tzresolve/internal/platform/logger"
)

var (
	localOnce sync.Once
	local     *time.Location
)

// LoadLocalZone reads TZ_LOCAL_ZONE, returning the host zone when it is unset.
// Binaries call it at startup to reject a bad setting before serving
func LoadLocalZone() (*time.Location, error) {
	return config.New().Prefix("TZ_").Location("LOCAL_ZONE", time.Local)
}

// LocalZone returns the process local zone, read once. An unknown
// TZ_LOCAL_ZONE logs a warning and falls back to the host zone.
// Tests swap the variable with testkit.Swap
var LocalZone = func() *time.Location {
	localOnce.Do(func() { local = loadOrHost() })
	return local
}

func loadOrHost() *time.Location {
	loc, err := LoadLocalZone()
	if err != nil {
		logger.Get().Warn().Err(err).Str("fallback", time.Local.String()).Msg("ignoring TZ_LOCAL_ZONE")
		return time.Local
	}
	return loc
}

// Fixed returns an accessor pinned to loc, handy as a LocalZone replacement
func Fixed(loc *time.Location) func() *time.Location {
	return func() *time.Location { return loc }
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
