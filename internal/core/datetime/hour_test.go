package datetime

import (
	"testing"

	perr "tzresolve/internal/platform/errors"
	kit "tzresolve/internal/platform/testkit"
)

func TestAt(t *testing.T) {
	t.Parallel()
	for h := 0; h <= 23; h++ {
		s, err := At(h)
		if err != nil || s.Hour() != h || s.IsEndOfDay() {
			t.Fatalf("At(%d) = %v, %v", h, s, err)
		}
	}
	for _, h := range []int{-1, 24, 99} {
		_, err := At(h)
		kit.MustCode(t, err, perr.ErrorCodeInvalidArgument)
	}
	kit.MustPanic(t, func() { _ = MustAt(24) })
}

func TestHourHint(t *testing.T) {
	t.Parallel()
	if s := HourHint(18); s.IsEndOfDay() || s.Hour() != 18 || s.String() != "18:00" {
		t.Fatalf("HourHint(18) = %v", s)
	}
	for _, h := range []uint{24, 25, 1 << 20} {
		if s := HourHint(h); !s.IsEndOfDay() || s != EndOfDay() {
			t.Fatalf("HourHint(%d) = %v, want end of day", h, s)
		}
	}
	if EndOfDay().String() != "end-of-day" {
		t.Fatalf("EndOfDay().String() = %q", EndOfDay().String())
	}
	var zero HourSelector
	if h, m, s, ns := zero.clock(); h+m+s+ns != 0 {
		t.Fatalf("zero selector is not midnight")
	}
}
