// Command tzresolve resolves dates and timestamps to the local zone from the command line
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"tzresolve/internal/core/datetime"
	perr "tzresolve/internal/platform/errors"
	"tzresolve/internal/platform/logger"

	"github.com/fatih/color"
)

const usage = `usage:
  tzresolve -date 02-10-2020 [-format american|iso|<strftime>] [-hour 18 | -end-of-day] [-zone Europe/Berlin]
  tzresolve -epoch 1587099600
  tzresolve -offset-text "2020-04-17 05:00:00.000" -offset 120
  tzresolve -exact 2023,11,5,1,30,0
common flags: -local <IANA zone> overrides the local zone, -json prints JSON, -v traces DST decisions
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line flags
type options struct {
	date       string
	format     string
	hour       uint
	endOfDay   bool
	zone       string
	epoch      uint64
	offsetText string
	offset     int
	exact      string
	local      string
	json       bool
	verbose    bool

	set map[string]bool
}

// result is what every mode prints
type result struct {
	Local     string `json:"local"`
	Unix      int64  `json:"unix"`
	Zone      string `json:"zone"`
	Ambiguous bool   `json:"ambiguous,omitempty"`
	Found     *bool  `json:"found,omitempty"`
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("tzresolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, color.YellowString(usage)) }

	fs.StringVar(&o.date, "date", "", "calendar date text")
	fs.StringVar(&o.format, "format", "iso", "preset (iso, american) or strftime pattern for -date")
	fs.UintVar(&o.hour, "hour", 0, "hour 0..23; 24 or more selects the end of the day")
	fs.BoolVar(&o.endOfDay, "end-of-day", false, "resolve -date at 23:59:59.999")
	fs.StringVar(&o.zone, "zone", "", "IANA zone -date is read in; empty means local")
	fs.Uint64Var(&o.epoch, "epoch", 0, "UNIX seconds")
	fs.StringVar(&o.offsetText, "offset-text", "", "timestamp without offset, YYYY-MM-DD HH:MM:SS[.fff]")
	fs.IntVar(&o.offset, "offset", 0, "UTC offset of -offset-text in minutes")
	fs.StringVar(&o.exact, "exact", "", "local year,month,day,hour,minute,second")
	fs.StringVar(&o.local, "local", "", "local zone override")
	fs.BoolVar(&o.json, "json", false, "print JSON")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	modes := 0
	for _, m := range []string{"date", "epoch", "offset-text", "exact"} {
		if o.set[m] {
			modes++
		}
	}
	if modes != 1 {
		return o, fmt.Errorf("choose exactly one of -date, -epoch, -offset-text, -exact")
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", color.RedString(err.Error()))
		fmt.Fprint(stderr, color.YellowString(usage))
		return 2
	}

	res, err := resolver(o)
	if err != nil {
		return fail(stderr, err)
	}
	out, err := resolve(res, o)
	if err != nil {
		return fail(stderr, err)
	}
	report(stdout, o, out)
	return 0
}

func resolver(o options) (*datetime.Resolver, error) {
	// -local loads through the cache the resolver then uses for -zone
	zones := datetime.NewZoneCache(datetime.DefaultZoneCacheSize)
	opts := []datetime.Option{datetime.WithZoneLoader(zones)}
	if o.verbose {
		logger.Init(logger.Options{Level: "debug", Format: "console", Writer: os.Stderr, Service: "tzresolve"})
		opts = append(opts, datetime.WithLogger(logger.Named("resolver")))
	}
	if o.local != "" {
		loc, err := zones.Load(o.local)
		if err != nil {
			return nil, perr.WithOp(err, "local")
		}
		opts = append(opts, datetime.WithLocal(loc))
	}
	return datetime.New(opts...), nil
}

func resolve(res *datetime.Resolver, o options) (result, error) {
	switch {
	case o.set["date"]:
		hour := datetime.HourHint(o.hour)
		if o.endOfDay {
			hour = datetime.EndOfDay()
		}
		date, err := datetime.ParseCalendarDate(o.date, datetime.LookupFormat(o.format))
		if err != nil {
			return result{}, err
		}
		r, err := res.ResolveDetail(date, hour, o.zone)
		if err != nil {
			return result{}, err
		}
		out := resultOf(r.Instant)
		out.Ambiguous = r.Ambiguous
		return out, nil

	case o.set["epoch"]:
		return resultOf(res.FromEpochSeconds(o.epoch)), nil

	case o.set["offset-text"]:
		t, err := res.FromOffsetText(o.offsetText, o.offset)
		if err != nil {
			return result{}, err
		}
		return resultOf(t), nil

	default:
		f, err := exactFields(o.exact)
		if err != nil {
			return result{}, err
		}
		t, ok := res.ConstructExact(f[0], f[1], f[2], f[3], f[4], f[5])
		out := result{Found: &ok}
		if ok {
			out = resultOf(t)
			out.Found = &ok
		}
		return out, nil
	}
}

// exactFields reads "y,m,d[,h[,mi[,s]]]"; missing trailing fields are zero
func exactFields(s string) ([6]int, error) {
	var f [6]int
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 6 {
		return f, perr.WithField(perr.InvalidArgf("-exact wants 3 to 6 comma separated integers, got %q", s), "exact")
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return f, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "-exact field %d", i+1), "exact")
		}
		f[i] = n
	}
	return f, nil
}

func resultOf(t time.Time) result {
	return result{
		Local: t.Format(time.RFC3339Nano),
		Unix:  t.Unix(),
		Zone:  t.Location().String(),
	}
}

func report(w io.Writer, o options, r result) {
	if o.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(r)
		return
	}
	if r.Found != nil && !*r.Found {
		fmt.Fprintln(w, color.YellowString("no such local time"))
		return
	}
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgGreen, color.Bold).Sprint(r.Local), color.HiBlackString("(%s, unix %d)", r.Zone, r.Unix))
	if r.Ambiguous {
		fmt.Fprintln(w, color.YellowString("ambiguous wall clock, earlier instant chosen"))
	}
}

func fail(w io.Writer, err error) int {
	wire := perr.WireFrom(err)
	label := color.New(color.FgRed, color.Bold).Sprintf("error[%s]", perr.CodeOf(err))
	if wire.Field != "" {
		label += color.HiBlackString(" %s", wire.Field)
	}
	fmt.Fprintf(w, "%s: %s\n", label, color.RedString(wire.Message))
	return 1
}
