package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"identity ascii", "2020-02-10", "2020-02-10"},
		{"empty", "", ""},
		{"utf8 repair drops invalid bytes", string([]byte{0xff, '0', '2', 0x80, '-', '1', '0'}), "02-10"},
		{"controls removed", "2020\x00-02\x7f-10", "2020-02-10"},
		{"fullwidth digits", "\uff12\uff10\uff12\uff10\uff0d\uff10\uff12\uff0d\uff11\uff10", "2020-02-10"},
		{"en dash and minus", "02\u201310\u22122020", "02-10-2020"},
		{"fraction slash", "02\u204410\u20442020", "02/10/2020"},
		{"zero widths", "2020\u200b-02\ufeff-10", "2020-02-10"},
		{"nbsp and tabs collapse", " 10\u00a0Feb\t\t2020 \n", "10 Feb 2020"},
		{"letters keep case", "Feb", "Feb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Text(tc.in)
			if got != tc.out {
				t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := Text(got); again != got {
				t.Fatalf("Text not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct{ in, out string }{
		{"", ""},
		{"\u2013", "-"},
		{"\uff0f", "/"},
		{" , ", " , "},
		{"\u00a0at\t", " at\t"},
	}
	for _, tc := range tests {
		if got := Literal(tc.in); got != tc.out {
			t.Fatalf("Literal(%q) = %q, want %q", tc.in, got, tc.out)
		}
		if Text(tc.in) != Text(Literal(tc.in)) {
			t.Fatalf("Literal(%q) folds differently from Text", tc.in)
		}
	}
}

func TestFold(t *testing.T) {
	cases := []struct {
		a, b string
		eq   bool
	}{
		{"FEBRUARY", "february", true},
		{"Mär", "MÄR", true},
		{"jan", "jun", false},
	}
	for _, c := range cases {
		if got := EqualFold(c.a, c.b); got != c.eq {
			t.Fatalf("EqualFold(%q, %q) = %v, want %v", c.a, c.b, got, c.eq)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	in := " \t a \n b   c \r\n "
	if got := collapseSpaces(in); got != "a b c" {
		t.Fatalf("collapseSpaces(%q) = %q", in, got)
	}
}
