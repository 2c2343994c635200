package calculation

import (
	money "github.com/rpgo/runway-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual percentage into a monthly rate as
// annualPct / 100 / 12. The split is proportional rather than the geometric
// 12th root so the monthly figures stay legible; negative rates shrink.
func MonthlyRate(annualPct decimal.Decimal) decimal.Decimal {
	return annualPct.Div(hundred).Div(twelve)
}

// ApplyGrowth returns base * (1 + monthlyRate)^elapsedMonths. Zero elapsed
// months returns base unchanged.
func ApplyGrowth(base, monthlyRate decimal.Decimal, elapsedMonths int) decimal.Decimal {
	return money.Compound(base, monthlyRate, elapsedMonths)
}
