package money

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"12.50", 1250},
		{"12.5", 1250},
		{"0.01", 1},
		{"100", 10000},
		{"0.10", 10},
	}
	for _, c := range cases {
		got, err := ParseCents(c.in)
		if err != nil {
			t.Errorf("ParseCents(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCents(%q): want %d, got %d", c.in, c.want, got)
		}
	}
}

func TestParseCents_Rejects(t *testing.T) {
	for _, in := range []string{"-5", "12.505", "abc", ""} {
		if _, err := ParseCents(in); err == nil {
			t.Errorf("ParseCents(%q): expected error", in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{1250, "12.50"},
		{1, "0.01"},
		{10000, "100.00"},
	}
	for _, c := range cases {
		if got := FormatCents(c.in); got != c.want {
			t.Errorf("FormatCents(%d): want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(1250); got != "+12.50" {
		t.Errorf("want +12.50, got %q", got)
	}
	if got := FormatSigned(-300); got != "-3.00" {
		t.Errorf("want -3.00, got %q", got)
	}
	if got := FormatSigned(0); got != "+0.00" {
		t.Errorf("want +0.00, got %q", got)
	}
}
