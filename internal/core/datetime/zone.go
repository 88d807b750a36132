package datetime

import (
	"strings"
	"time"

	perr "tzresolve/internal/platform/errors"

	"github.com/maypok86/otter/v2"
)

// DefaultZoneCacheSize bounds the zone cache when no size is configured
const DefaultZoneCacheSize = 256

// ZoneLoader looks up IANA zones by name
type ZoneLoader interface {
	Load(name string) (*time.Location, error)
}

// ZoneLoaderFunc adapts a function to ZoneLoader
type ZoneLoaderFunc func(name string) (*time.Location, error)

// Load calls f(name)
func (f ZoneLoaderFunc) Load(name string) (*time.Location, error) { return f(name) }

// ZoneCache is a bounded, concurrency safe ZoneLoader over the tz database.
// Failed lookups are not cached
type ZoneCache struct {
	cache *otter.Cache[string, *time.Location]
	load  func(string) (*time.Location, error)
}

// NewZoneCache builds a cache holding at most size zones
func NewZoneCache(size int) *ZoneCache {
	if size <= 0 {
		size = DefaultZoneCacheSize
	}
	return &ZoneCache{
		cache: otter.Must(&otter.Options[string, *time.Location]{
			MaximumSize:     size,
			InitialCapacity: min(size, 64),
		}),
		load: time.LoadLocation,
	}
}

// Load returns the zone called name. "", "Local" and names the tz database
// does not know fail with ErrorCodeTimezone
func (c *ZoneCache) Load(name string) (*time.Location, error) {
	if loc, ok := c.cache.GetIfPresent(name); ok {
		return loc, nil
	}
	if err := checkZoneName(name); err != nil {
		return nil, err
	}
	loc, err := c.load(name)
	if err != nil {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeTimezone, "unknown time zone %q", name), "zone")
	}
	c.cache.Set(name, loc)
	return loc, nil
}

// Len reports the approximate number of cached zones
func (c *ZoneCache) Len() int { return c.cache.EstimatedSize() }

// time.LoadLocation maps "" to UTC and "Local" to the host zone; neither is a zone name
func checkZoneName(name string) error {
	if name == "" || name == "Local" || strings.TrimSpace(name) != name {
		return perr.WithField(perr.Timezonef("unknown time zone %q", name), "zone")
	}
	return nil
}
