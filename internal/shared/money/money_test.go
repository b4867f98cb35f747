package money

import "testing"

func TestParseMajor(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"0.01", 1},
		{"12.34", 1234},
		{"12.345", 1235}, // half rounds up
		{"12.344", 1234},
		{"99999.99", 9999999},
		{"100000", 10000000},
		{"5", 500},
	}
	for _, c := range cases {
		got, err := ParseMajor(c.in)
		if err != nil {
			t.Fatalf("ParseMajor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseMajor(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseMajorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "12..3", "£12"} {
		if _, err := ParseMajor(in); err == nil {
			t.Errorf("ParseMajor(%q): expected error", in)
		}
	}
}

func TestFormatMinor(t *testing.T) {
	if got := FormatMinor("GBP", 1000); got != "£10.00" {
		t.Errorf("got %q", got)
	}
	if got := FormatMinor("USD", 99); got != "$0.99" {
		t.Errorf("got %q", got)
	}
	if got := FormatMinor("CHF", 150); got != "1.50 CHF" {
		t.Errorf("got %q", got)
	}
}
