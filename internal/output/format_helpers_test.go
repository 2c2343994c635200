package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234567.4)
	got := FormatCurrency(v)
	want := "$1,234,567"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
	if got := FormatCurrency(decimal.NewFromFloat(-18309.63)); got != "-$18,310" {
		t.Errorf("FormatCurrency negative = %q", got)
	}
}

func TestFormatCompactCurrency(t *testing.T) {
	if got := FormatCompactCurrency(decimal.NewFromInt(470000)); got != "$470.0K" {
		t.Errorf("FormatCompactCurrency = %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatMonthsDelta(t *testing.T) {
	cases := map[int64]string{
		3:  "+3 months",
		1:  "+1 month",
		0:  "0 months",
		-1: "-1 month",
		-4: "-4 months",
	}
	for in, want := range cases {
		if got := FormatMonthsDelta(decimal.NewFromInt(in)); got != want {
			t.Errorf("FormatMonthsDelta(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestIntAndBoolToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
}
