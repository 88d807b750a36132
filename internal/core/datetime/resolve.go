package datetime

import (
	"slices"
	"time"

	"tzresolve/internal/platform/config"
	perr "tzresolve/internal/platform/errors"
	"tzresolve/internal/platform/logger"
	ptime "tzresolve/internal/platform/time"
)

// Kind classifies how a wall clock maps onto a zone
type Kind uint8

const (
	// Unique wall clocks denote exactly one instant
	Unique Kind = iota
	// Ambiguous wall clocks occur twice (fall-back overlap)
	Ambiguous
	// Nonexistent wall clocks are skipped (spring-forward gap)
	Nonexistent
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	case Nonexistent:
		return "nonexistent"
	}
	return "unknown"
}

// Interpretation is the set of instants a wall clock denotes in a zone,
// ordered earliest first
type Interpretation struct {
	Kind       Kind
	Candidates []time.Time
}

// Earliest returns the first candidate. Ambiguous wall clocks resolve to it
func (i Interpretation) Earliest() (time.Time, bool) {
	if len(i.Candidates) == 0 {
		return time.Time{}, false
	}
	return i.Candidates[0], true
}

// Latest returns the last candidate
func (i Interpretation) Latest() (time.Time, bool) {
	if len(i.Candidates) == 0 {
		return time.Time{}, false
	}
	return i.Candidates[len(i.Candidates)-1], true
}

// zone transitions are never closer than this on either side of a wall clock
const probeWindow = 26 * time.Hour

// Interpret maps the wall clock fields of wall (its location is ignored) onto
// loc. Every UTC offset loc uses near that wall clock is tried; an offset is a
// candidate when the instant it yields really carries that offset
func Interpret(wall time.Time, loc *time.Location) Interpretation {
	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	naive := time.Date(y, mo, d, h, mi, s, wall.Nanosecond(), time.UTC)

	var out []time.Time
	for _, off := range offsetsNear(naive, loc) {
		c := naive.Add(-time.Duration(off) * time.Second).In(loc)
		if _, got := c.Zone(); got != off {
			continue
		}
		if !slices.ContainsFunc(out, c.Equal) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })

	switch len(out) {
	case 0:
		return Interpretation{Kind: Nonexistent}
	case 1:
		return Interpretation{Kind: Unique, Candidates: out}
	default:
		return Interpretation{Kind: Ambiguous, Candidates: out}
	}
}

// offsetsNear walks zone periods across the probe window around naive
func offsetsNear(naive time.Time, loc *time.Location) []int {
	var offs []int
	t, end := naive.Add(-probeWindow), naive.Add(probeWindow)
	for range 16 {
		in := t.In(loc)
		_, off := in.Zone()
		if !slices.Contains(offs, off) {
			offs = append(offs, off)
		}
		_, next := in.ZoneBounds()
		if next.IsZero() || next.After(end) || !next.After(t) {
			break
		}
		t = next
	}
	return offs
}

// Resolver resolves dates against a local zone and a zone database
type Resolver struct {
	local func() *time.Location
	zones ZoneLoader
	log   *logger.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLocal pins the local zone instead of reading ptime.LocalZone per call
func WithLocal(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.local = ptime.Fixed(loc)
		}
	}
}

// WithZoneLoader replaces the zone database lookup
func WithZoneLoader(z ZoneLoader) Option {
	return func(r *Resolver) {
		if z != nil {
			r.zones = z
		}
	}
}

// WithLogger traces DST tie-breaks at debug level
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// New builds a Resolver. The default zone loader is a ZoneCache sized by
// TZ_ZONE_CACHE_SIZE
func New(opts ...Option) *Resolver {
	r := &Resolver{
		local: func() *time.Location { return ptime.LocalZone() },
		log:   logger.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.zones == nil {
		r.zones = NewZoneCache(config.New().Prefix("TZ_").MayInt("ZONE_CACHE_SIZE", DefaultZoneCacheSize))
	}
	return r
}

// Local returns the zone results are expressed in
func (r *Resolver) Local() *time.Location {
	if loc := r.local(); loc != nil {
		return loc
	}
	return time.UTC
}

// Zone returns the named zone, or the local zone for ""
func (r *Resolver) Zone(name string) (*time.Location, error) {
	if name == "" {
		return r.Local(), nil
	}
	return r.zones.Load(name)
}

// Resolution is a resolved instant with the detail of how it was chosen
type Resolution struct {
	Instant   time.Time
	Date      CalendarDate
	Zone      *time.Location
	Ambiguous bool
	// Later is the instant not chosen for an ambiguous wall clock
	Later time.Time
}

// Resolve returns the local instant of date at hour in zone ("" for local)
func (r *Resolver) Resolve(date CalendarDate, hour HourSelector, zone string) (time.Time, error) {
	res, err := r.ResolveDetail(date, hour, zone)
	if err != nil {
		return time.Time{}, err
	}
	return res.Instant, nil
}

// ResolveDetail is Resolve reporting the DST decision as well
func (r *Resolver) ResolveDetail(date CalendarDate, hour HourSelector, zone string) (Resolution, error) {
	if !date.Valid() {
		return Resolution{}, perr.WithOp(perr.WithField(perr.InvalidDatef("%s is not a calendar date", date), "date"), "resolve")
	}
	loc, err := r.Zone(zone)
	if err != nil {
		return Resolution{}, perr.WithOp(err, "resolve")
	}

	wall := date.Wall(hour)
	in := Interpret(wall, loc)
	first, ok := in.Earliest()
	if !ok {
		return Resolution{}, perr.WithOp(perr.WithField(
			perr.Conversionf("%s does not exist in %s", wall.Format(wallLayout), loc), "hour"), "resolve")
	}

	res := Resolution{Instant: first.In(r.Local()), Date: date, Zone: loc}
	if in.Kind == Ambiguous {
		later, _ := in.Latest()
		res.Ambiguous = true
		res.Later = later.In(r.Local())
		r.log.Debug().
			Str("wall", wall.Format(wallLayout)).
			Str("zone", loc.String()).
			Time("chosen", first).
			Time("skipped", later).
			Msg("ambiguous wall clock, using earlier instant")
	}
	return res, nil
}

const wallLayout = "2006-01-02 15:04:05.000"
