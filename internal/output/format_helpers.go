package output

import (
	"strconv"

	money "github.com/rpgo/runway-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole dollars with separators, e.g. "$1,234,567".
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatCompactCurrency formats a decimal with a K/M/B suffix.
func FormatCompactCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatCompact()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonths renders a month count with its unit, e.g. "3 months" or "1 month".
func FormatMonths(n decimal.Decimal) string {
	if n.Abs().Equal(decimal.NewFromInt(1)) {
		return n.String() + " month"
	}
	return n.String() + " months"
}

// FormatMonthsDelta renders a signed month count, e.g. "+3 months" or "-1 month".
func FormatMonthsDelta(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+" + FormatMonths(delta)
	}
	return FormatMonths(delta)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
