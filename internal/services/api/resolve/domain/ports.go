package domain

import (
	"context"
	"time"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ResolveDate(ctx context.Context, in DateInput) (Instant, error)
	FromEpoch(ctx context.Context, in EpochInput) (Instant, error)
	FromOffset(ctx context.Context, in OffsetInput) (Instant, error)
	Exact(ctx context.Context, in ExactInput) (ExactOutput, error)
	Zone(ctx context.Context, name string) (ZoneOutput, error)
}

// ZonePort loads IANA zones the way the resolve routes do
type ZonePort interface {
	Zone(name string) (*time.Location, error)
}
