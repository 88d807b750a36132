// Package service contains resolve workflows over the datetime resolver
package service

import (
	"context"
	"time"

	"tzresolve/internal/core/datetime"
	"tzresolve/internal/platform/logger"
	ptime "tzresolve/internal/platform/time"
	"tzresolve/internal/services/api/resolve/domain"
)

// Service defines the resolve service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the resolve service
type Svc struct {
	res *datetime.Resolver
	now func() time.Time
}

// New constructs a resolve service
func New(res *datetime.Resolver) *Svc {
	if res == nil {
		panic("resolve.Service requires a non nil Resolver")
	}
	return &Svc{res: res, now: time.Now}
}

// ResolveDate parses the date with its format and resolves it at the selected hour
func (s *Svc) ResolveDate(ctx context.Context, in domain.DateInput) (domain.Instant, error) {
	ctx = logger.WithZone(ctx, in.Zone)
	format := datetime.LookupFormat(in.Format)

	date, err := datetime.ParseCalendarDate(in.Date, format)
	if err != nil {
		return domain.Instant{}, err
	}
	hour := datetime.HourHint(in.Hour)
	if in.EndOfDay {
		hour = datetime.EndOfDay()
	}

	res, err := s.res.ResolveDetail(date, hour, in.Zone)
	if err != nil {
		return domain.Instant{}, err
	}
	out := instantOf(res.Instant)
	out.Date = date.String()
	if res.Ambiguous {
		out.Ambiguous = true
		out.Alternate = ptime.Ptr(res.Later)
		logger.C(ctx).Debug().
			Str("date", out.Date).
			Str("hour", hour.String()).
			Msg("resolved ambiguous wall clock to earlier instant")
	}
	return out, nil
}

// FromEpoch converts UNIX seconds to local time
func (s *Svc) FromEpoch(_ context.Context, in domain.EpochInput) (domain.Instant, error) {
	return instantOf(s.res.FromEpochSeconds(in.Seconds)), nil
}

// FromOffset converts a fixed offset reading to local time
func (s *Svc) FromOffset(_ context.Context, in domain.OffsetInput) (domain.Instant, error) {
	t, err := s.res.FromOffsetText(in.Text, in.OffsetMinutes)
	if err != nil {
		return domain.Instant{}, err
	}
	return instantOf(t), nil
}

// Exact builds a local reading field by field; a missing reading is not an error
func (s *Svc) Exact(_ context.Context, in domain.ExactInput) (domain.ExactOutput, error) {
	t, ok := s.res.ConstructExact(in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
	if !ok {
		return domain.ExactOutput{Found: false}, nil
	}
	inst := instantOf(t)
	return domain.ExactOutput{Found: true, Instant: &inst}, nil
}

// Zone loads a zone by name and reports its current offset
func (s *Svc) Zone(_ context.Context, name string) (domain.ZoneOutput, error) {
	loc, err := s.res.Zone(name)
	if err != nil {
		return domain.ZoneOutput{}, err
	}
	now := s.now().In(loc)
	abbr, off := now.Zone()
	return domain.ZoneOutput{
		Name:          loc.String(),
		Abbreviation:  abbr,
		Offset:        now.Format("-07:00"),
		OffsetSeconds: off,
		DST:           now.IsDST(),
		Now:           now.Format(time.RFC3339),
	}, nil
}

func instantOf(t time.Time) domain.Instant {
	return domain.Instant{
		Local:     t.Format(time.RFC3339Nano),
		Unix:      t.Unix(),
		UnixMilli: t.UnixMilli(),
		Offset:    t.Format("-07:00"),
		Zone:      t.Location().String(),
		Date:      datetime.DateOf(t).String(),
	}
}
