package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundWhole rounds the money amount to whole currency units
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole dollars with thousands separators, e.g. "-$1,234,567".
func (m Money) Format() string {
	rounded := m.Decimal.Round(0)
	s := rounded.Abs().StringFixed(0)
	groups := make([]string, 0, len(s)/3+1)
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + "$" + strings.Join(groups, ",")
}

// FormatCompact renders large amounts with K/M/B suffixes, e.g. "$1.2M".
func (m Money) FormatCompact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000_000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1_000_000_000)).StringFixed(1) + "B"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1_000)).StringFixed(1) + "K"
	default:
		return sign + "$" + abs.StringFixed(0)
	}
}

// Compound grows base by rate per period: base * (1 + rate)^periods.
func Compound(base, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return base
	}
	factor := one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
	return base.Mul(factor)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// SafeRatio returns num/den, or zero when den is zero so no NaN/Inf-style
// value ever reaches a caller.
func SafeRatio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// Percent converts a ratio to a percentage.
func Percent(ratio decimal.Decimal) decimal.Decimal {
	return ratio.Mul(hundred)
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
