package datetime

import (
	"strings"
	"time"
)

// Preset formats for the common external date sources
const (
	// AmericanFormat reads month-day-year, e.g. 02-10-2020
	AmericanFormat = "%m-%d-%Y"
	// ISOFormat reads year-month-day, e.g. 2020-02-10
	ISOFormat = "%F"
)

// LookupFormat maps a preset name to its format. "" means ISOFormat; any
// other unknown name is returned as is and treated as a format
func LookupFormat(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "iso", "standard":
		return ISOFormat
	case "american", "us":
		return AmericanFormat
	}
	return name
}

// ParseCalendarDate reads text with a strftime style format.
// Supported directives: %Y %C %y %m %d %e %j %b %h %B %a %A %F %D %x
// %H %I %M %S %p %T %R %n %t %%. Time of day fields are range checked and
// otherwise ignored. Mismatches and impossible dates fail with ErrorCodeParse
func ParseCalendarDate(text, format string) (CalendarDate, error) {
	d, err := parseDate(text, format)
	if err != nil {
		return CalendarDate{}, asParseFailure(err, text, format)
	}
	return d, nil
}

// ResolveFromText parses text with format and resolves it at hour in zone
func (r *Resolver) ResolveFromText(text, format string, hour HourSelector, zone string) (time.Time, error) {
	d, err := ParseCalendarDate(text, format)
	if err != nil {
		return time.Time{}, err
	}
	return r.Resolve(d, hour, zone)
}

// ResolveAmerican is ResolveFromText with AmericanFormat
func (r *Resolver) ResolveAmerican(text string, hour HourSelector, zone string) (time.Time, error) {
	return r.ResolveFromText(text, AmericanFormat, hour, zone)
}

// ResolveISO is ResolveFromText with ISOFormat
func (r *Resolver) ResolveISO(text string, hour HourSelector, zone string) (time.Time, error) {
	return r.ResolveFromText(text, ISOFormat, hour, zone)
}
