// Package normalize cleans free-form date text before it is parsed.
// Pipeline order
// 1 UTF-8 repair and control character removal
// 2 Unicode NFKC normalization
// 3 Remove format characters (ZWSP, ZWJ, BOM, bidi marks)
// 4 Width fold fullwidth digits and punctuation to ASCII
// 5 Map dash and slash lookalikes to '-' and '/'
// 6 Collapse whitespace runs to one space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			runes.Map(foldPunct),
		)
	},
}

var folder = sync.Pool{New: func() any { c := cases.Fold(); return &c }}

// Text returns the sanitised form of s. The result is idempotent under Text
func Text(s string) string {
	if s == "" {
		return ""
	}
	return collapseSpaces(Literal(s))
}

// Literal applies the character folds of Text without touching whitespace, so
// format literals compare equal to the text they are matched against
func Literal(s string) string {
	if s == "" {
		return ""
	}
	s = stripControls(strings.ToValidUTF8(s, ""))

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return ns
}

// Fold returns the caseless form of s for name comparisons (month and weekday names)
func Fold(s string) string {
	c := folder.Get().(*cases.Caser)
	out := c.String(s)
	folder.Put(c)
	return out
}

// EqualFold reports whether a and b are equal under Unicode case folding
func EqualFold(a, b string) bool { return Fold(a) == Fold(b) }

// foldPunct maps the dashes and slashes people paste from documents
func foldPunct(r rune) rune {
	switch r {
	case '\u2010', '\u2011', '\u2012', '\u2013', '\u2014', '\u2212', '\uFE63':
		return '-'
	case '\u2044', '\u2215', '\u29F8':
		return '/'
	}
	return r
}

// stripControls drops C0/C1 controls except whitespace, and DEL
func stripControls(s string) string {
	clean := true
	for _, r := range s {
		if isControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

// collapseSpaces converts every whitespace run to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
