package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	perr "tzresolve/internal/platform/errors"
	kit "tzresolve/internal/platform/testkit"

	"github.com/fatih/color"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	kit.Swap(t, &color.NoColor, true)
	var out, errb bytes.Buffer
	code := run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestRunModes(t *testing.T) {
	kit.Serial(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"american", []string{"-local", "UTC", "-date", "02-10-2020", "-format", "american", "-hour", "18"}, "2020-02-10T18:00:00Z"},
		{"iso foreign", []string{"-local", "UTC", "-date", "2020-02-10", "-hour", "18", "-zone", "Europe/Berlin"}, "2020-02-10T17:00:00Z"},
		{"custom", []string{"-local", "UTC", "-date", "10-2020-02", "-format", "%d-%Y-%m", "-hour", "18"}, "2020-02-10T18:00:00Z"},
		{"end of day", []string{"-local", "UTC", "-date", "2020-02-10", "-hour", "24"}, "2020-02-10T23:59:59.999Z"},
		{"epoch", []string{"-local", "UTC", "-epoch", "1587099600"}, "2020-04-17T05:00:00Z"},
		{"offset", []string{"-local", "UTC", "-offset-text", "2020-04-17 05:00:00.000", "-offset", "120"}, "2020-04-17T03:00:00Z"},
		{"exact overlap", []string{"-local", "America/New_York", "-exact", "2023,11,5,1,30,0"}, "2023-11-05T01:30:00-04:00"},
		{"exact gap", []string{"-local", "America/New_York", "-exact", "2023,3,12,2,30"}, "no such local time"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, c.args...)
			if code != 0 {
				t.Fatalf("exit %d: %s", code, errOut)
			}
			kit.MustContain(t, out, c.want)
		})
	}
}

func TestRunAmbiguousNotice(t *testing.T) {
	kit.Serial(t)
	code, out, _ := runCLI(t, "-local", "America/New_York", "-date", "2023-11-05", "-hour", "1")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	kit.MustContain(t, out, "2023-11-05T01:00:00-04:00")
	kit.MustContain(t, out, "earlier instant chosen")
}

func TestRunJSON(t *testing.T) {
	kit.Serial(t)
	code, out, _ := runCLI(t, "-json", "-local", "UTC", "-epoch", "1587099600")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var r result
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if r.Local != "2020-04-17T05:00:00Z" || r.Unix != 1587099600 || r.Zone != "UTC" {
		t.Fatalf("got %+v", r)
	}
}

func TestRunErrors(t *testing.T) {
	kit.Serial(t)

	cases := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"no mode", nil, 2, "choose exactly one"},
		{"two modes", []string{"-date", "2020-02-10", "-epoch", "1"}, 2, "choose exactly one"},
		{"stray arg", []string{"-epoch", "1", "extra"}, 2, "unexpected arguments"},
		{"bad flag", []string{"-nope"}, 2, "usage"},
		{"gap", []string{"-local", "America/New_York", "-date", "2023-03-12", "-hour", "2"}, 1, "error[conversion] hour"},
		{"bad zone", []string{"-local", "UTC", "-date", "2020-02-10", "-zone", "Mars/Olympus"}, 1, "error[timezone] zone"},
		{"bad local", []string{"-local", "Mars/Olympus", "-epoch", "1"}, 1, "error[timezone]"},
		{"bad date", []string{"-local", "UTC", "-date", "2020-02-30"}, 1, "error[parse] date"},
		{"bad offset", []string{"-local", "UTC", "-offset-text", "2020-04-17 05:00:00", "-offset", "1440"}, 1, "error[parse] offset_minutes"},
		{"bad exact", []string{"-local", "UTC", "-exact", "2023,x,1"}, 1, "error[invalid_argument] exact"},
		{"short exact", []string{"-local", "UTC", "-exact", "2023"}, 1, "error[invalid_argument] exact"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, c.args...)
			if code != c.code {
				t.Fatalf("exit %d, want %d (%s)", code, c.code, errOut)
			}
			if out != "" {
				t.Fatalf("unexpected stdout %q", out)
			}
			kit.MustContain(t, errOut, c.want)
		})
	}
}

func TestResolverSharesZoneCache(t *testing.T) {
	res, err := resolver(options{local: "Asia/Tokyo"})
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	if res.Local().String() != "Asia/Tokyo" {
		t.Fatalf("Local = %v", res.Local())
	}
	if z, err := res.Zone("Asia/Tokyo"); err != nil || z != res.Local() {
		t.Fatalf("Zone(Asia/Tokyo) = %p, want cached %p (%v)", z, res.Local(), err)
	}

	if _, err := resolver(options{local: "Mars/Olympus"}); !perr.IsCode(err, perr.ErrorCodeTimezone) {
		t.Fatalf("bad local = %v", err)
	}
}

func TestRunHelp(t *testing.T) {
	kit.Serial(t)
	code, _, errOut := runCLI(t, "-h")
	if code != 0 || !strings.Contains(errOut, "tzresolve -epoch") {
		t.Fatalf("help exit %d: %q", code, errOut)
	}
}
