package pipeline

import "testing"

func TestSafeDiv(t *testing.T) {
	cases := []struct {
		num, den, want float64
	}{
		{10, 2, 5},
		{10, 0, 0},
		{0, 0, 0},
		{-10, 4, -2.5},
	}
	for _, c := range cases {
		if got := safeDiv(c.num, c.den); got != c.want {
			t.Errorf("safeDiv(%v, %v) = %v, want %v", c.num, c.den, got, c.want)
		}
	}
}

func TestSafePctZeroDenominator(t *testing.T) {
	if got := safePct(5, 0); got != 0 {
		t.Fatalf("safePct(5, 0) = %v, want 0", got)
	}
	if got := safePct(1, 4); got != 25 {
		t.Fatalf("safePct(1, 4) = %v, want 25", got)
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,234,500", 1234500},
		{" 15000 ", 15000},
		{"15000.50", 15000.50},
		{"", 0},
		{"abc", 0},
		{"-500", 0}, // negative amounts are data errors, coerced to 0
		{"NaN", 0},
	}
	for _, c := range cases {
		if got := parseMoney(c.in); got != c.want {
			t.Errorf("parseMoney(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
