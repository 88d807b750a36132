package datetime

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"tzresolve/internal/core/normalize"
	perr "tzresolve/internal/platform/errors"
)

// composite directives expand to these sequences
var composites = map[byte]string{
	'F': "%Y-%m-%d",
	'D': "%m/%d/%y",
	'x': "%m/%d/%y",
	'T': "%H:%M:%S",
	'R': "%H:%M",
	'h': "%b",
}

var (
	monthNames = [...]string{"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december"}
	weekdayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
)

// field is one parsed numeric value; set distinguishes zero from absent
type field struct {
	v   int
	set bool
}

type parsed struct {
	year, century, yy, month, day, yday field
	weekday                             field
	hour, hour12, minute, second        field
	pm                                  field
}

type scanner struct {
	text, format string
	pos          int
	p            parsed
}

type parseError struct{ reason string }

func (e parseError) Error() string { return e.reason }

func failf(format string, args ...any) error {
	return parseError{reason: fmt.Sprintf(format, args...)}
}

// parseDate runs format over text and assembles a validated CalendarDate
func parseDate(text, format string) (CalendarDate, error) {
	format = foldLiterals(format)
	s := &scanner{text: normalize.Text(text), format: format}
	if err := s.run(format, 0); err != nil {
		return CalendarDate{}, err
	}
	s.skipSpace()
	if s.pos < len(s.text) {
		return CalendarDate{}, failf("trailing input %q", s.text[s.pos:])
	}
	return s.p.date()
}

// foldLiterals passes the literal runs of format through the same character
// folds as the input text; directives are copied verbatim
func foldLiterals(format string) string {
	var b strings.Builder
	b.Grow(len(format))
	lit := 0
	flush := func(end int) {
		if end > lit {
			b.WriteString(normalize.Literal(format[lit:end]))
		}
	}
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		flush(i)
		j := i + 1
		if j < len(format) && (format[j] == '-' || format[j] == '_' || format[j] == '0') {
			j++
		}
		if j < len(format) {
			j++
		}
		b.WriteString(format[i:j])
		i, lit = j, j
	}
	flush(len(format))
	return b.String()
}

func (s *scanner) run(format string, depth int) error {
	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '%':
			i++
			if i < len(format) && (format[i] == '-' || format[i] == '_' || format[i] == '0') {
				i++
			}
			if i >= len(format) {
				return failf("format ends inside a directive")
			}
			d := format[i]
			i++
			if exp, ok := composites[d]; ok && depth == 0 {
				if err := s.run(exp, depth+1); err != nil {
					return err
				}
				continue
			}
			if err := s.directive(d); err != nil {
				return err
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.skipSpace()
			i++
		default:
			r, size := utf8.DecodeRuneInString(format[i:])
			got, gsize := utf8.DecodeRuneInString(s.text[s.pos:])
			if s.pos >= len(s.text) || got != r {
				return failf("expected %q at offset %d", r, s.pos)
			}
			s.pos += gsize
			i += size
		}
	}
	return nil
}

func (s *scanner) directive(d byte) error {
	switch d {
	case 'Y':
		v, err := s.year()
		if err != nil {
			return err
		}
		return s.set(&s.p.year, v, "year")
	case 'C':
		return s.num(&s.p.century, 1, 2, 0, 99, "century")
	case 'y':
		return s.num(&s.p.yy, 1, 2, 0, 99, "year")
	case 'm':
		return s.num(&s.p.month, 1, 2, 1, 12, "month")
	case 'd', 'e':
		return s.num(&s.p.day, 1, 2, 1, 31, "day")
	case 'j':
		return s.num(&s.p.yday, 1, 3, 1, 366, "day of year")
	case 'b', 'B':
		v, err := s.name(monthNames[:])
		if err != nil {
			return err
		}
		return s.set(&s.p.month, v+1, "month")
	case 'a', 'A':
		v, err := s.name(weekdayNames[:])
		if err != nil {
			return err
		}
		return s.set(&s.p.weekday, v, "weekday")
	case 'H':
		return s.num(&s.p.hour, 1, 2, 0, 23, "hour")
	case 'I':
		return s.num(&s.p.hour12, 1, 2, 1, 12, "hour")
	case 'M':
		return s.num(&s.p.minute, 1, 2, 0, 59, "minute")
	case 'S':
		return s.num(&s.p.second, 1, 2, 0, 60, "second")
	case 'p', 'P':
		return s.meridiem()
	case 'n', 't':
		s.skipSpace()
		return nil
	case '%':
		if s.pos >= len(s.text) || s.text[s.pos] != '%' {
			return failf("expected '%%' at offset %d", s.pos)
		}
		s.pos++
		return nil
	}
	return failf("unsupported directive %%%c", d)
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// digits reads between minW and maxW ASCII digits after optional whitespace
func (s *scanner) digits(minW, maxW int, what string) (int, error) {
	s.skipSpace()
	start, v := s.pos, 0
	for s.pos < len(s.text) && s.pos-start < maxW && isDigit(s.text[s.pos]) {
		v = v*10 + int(s.text[s.pos]-'0')
		s.pos++
	}
	if s.pos-start < minW {
		return 0, failf("expected %s at offset %d", what, start)
	}
	return v, nil
}

func (s *scanner) num(f *field, minW, maxW, lo, hi int, what string) error {
	v, err := s.digits(minW, maxW, what)
	if err != nil {
		return err
	}
	if v < lo || v > hi {
		return failf("%s %d outside %d..%d", what, v, lo, hi)
	}
	return s.set(f, v, what)
}

// year reads 1-4 unsigned digits, or a sign followed by any number of digits
func (s *scanner) year() (int, error) {
	s.skipSpace()
	if s.pos < len(s.text) && (s.text[s.pos] == '+' || s.text[s.pos] == '-') {
		neg := s.text[s.pos] == '-'
		s.pos++
		v, err := s.digits(1, 9, "year")
		if neg {
			v = -v
		}
		return v, err
	}
	return s.digits(1, 4, "year")
}

// name matches a full name or its three letter abbreviation, case-insensitively
func (s *scanner) name(names []string) (int, error) {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		s.pos += size
	}
	word := normalize.Fold(s.text[start:s.pos])
	for i, n := range names {
		if word == n || word == n[:3] {
			return i, nil
		}
	}
	s.pos = start
	return 0, failf("unknown name %q at offset %d", word, start)
}

func (s *scanner) meridiem() error {
	s.skipSpace()
	if s.pos+2 > len(s.text) {
		return failf("expected AM or PM at offset %d", s.pos)
	}
	switch normalize.Fold(s.text[s.pos : s.pos+2]) {
	case "am":
		s.pos += 2
		return s.set(&s.p.pm, 0, "meridiem")
	case "pm":
		s.pos += 2
		return s.set(&s.p.pm, 1, "meridiem")
	}
	return failf("expected AM or PM at offset %d", s.pos)
}

func (s *scanner) set(f *field, v int, what string) error {
	if f.set && f.v != v {
		return failf("conflicting %s: %d and %d", what, f.v, v)
	}
	*f = field{v: v, set: true}
	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// date assembles the parsed fields, cross-checking every redundant one
func (p parsed) date() (CalendarDate, error) {
	year, err := p.fullYear()
	if err != nil {
		return CalendarDate{}, err
	}

	var d CalendarDate
	switch {
	case p.month.set && p.day.set:
		d = CalendarDate{Year: year, Month: time.Month(p.month.v), Day: p.day.v}
		if !d.Valid() {
			return CalendarDate{}, failf("%s is not a calendar date", d)
		}
		if p.yday.set && d.YearDay() != p.yday.v {
			return CalendarDate{}, failf("day of year %d does not match %s", p.yday.v, d)
		}
	case p.yday.set:
		var ok bool
		if d, ok = dateFromYearDay(year, p.yday.v); !ok {
			return CalendarDate{}, failf("day of year %d outside year %d", p.yday.v, year)
		}
		if p.month.set && int(d.Month) != p.month.v {
			return CalendarDate{}, failf("day of year %d is not in month %d", p.yday.v, p.month.v)
		}
	default:
		return CalendarDate{}, failf("missing month or day")
	}

	if p.weekday.set && d.Weekday() != time.Weekday(p.weekday.v) {
		return CalendarDate{}, failf("%s is a %s, not a %s", d, d.Weekday(), time.Weekday(p.weekday.v))
	}
	if p.hour.set && p.hour12.set {
		ok := p.hour.v%12 == p.hour12.v%12
		if p.pm.set {
			ok = p.hour12.v%12+12*p.pm.v == p.hour.v
		}
		if !ok {
			return CalendarDate{}, failf("conflicting hour: %d and %d", p.hour.v, p.hour12.v)
		}
	}
	return d, nil
}

func (p parsed) fullYear() (int, error) {
	switch {
	case p.year.set:
		if p.yy.set && mod(p.year.v, 100) != p.yy.v {
			return 0, failf("conflicting year: %d and %02d", p.year.v, p.yy.v)
		}
		if p.century.set && floorDiv(p.year.v, 100) != p.century.v {
			return 0, failf("conflicting century: %d and %d", p.year.v, p.century.v)
		}
		return p.year.v, nil
	case p.yy.set && p.century.set:
		return p.century.v*100 + p.yy.v, nil
	case p.yy.set:
		if p.yy.v < 70 {
			return 2000 + p.yy.v, nil
		}
		return 1900 + p.yy.v, nil
	}
	return 0, failf("missing year")
}

func mod(a, b int) int { return ((a % b) + b) % b }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// asParseFailure turns scanner errors into the platform parse error
func asParseFailure(err error, text, format string) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(parseError); ok {
		return perr.WithField(perr.Parsef("parse %q with %q: %s", text, format, pe.reason), "date")
	}
	return perr.Recode(err, perr.ErrorCodeParse)
}
