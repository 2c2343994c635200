package calculation

import (
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// FindCashCrossover finds the first month at which scenario B's cash moves
// from below A's to at-or-above it, interpolating linearly within the month.
// It returns nil when B never overtakes A, including when B starts ahead.
func FindCashCrossover(a, b domain.ProjectionSeries) *domain.CashCrossover {
	n := min(len(a), len(b))
	if n < 2 {
		return nil
	}

	prevDiff := b[0].Cash.Sub(a[0].Cash)
	for i := 1; i < n; i++ {
		currDiff := b[i].Cash.Sub(a[i].Cash)
		if prevDiff.IsNegative() && !currDiff.IsNegative() {
			// diff(t) = prevDiff + t*(currDiff - prevDiff); solve diff(t) = 0
			denom := currDiff.Sub(prevDiff)
			t := prevDiff.Neg().Div(denom)
			if t.GreaterThan(decimal.NewFromInt(1)) {
				t = decimal.NewFromInt(1)
			}
			at := a[i-1].Cash.Add(a[i].Cash.Sub(a[i-1].Cash).Mul(t))
			return &domain.CashCrossover{
				Month:    a[i].Month,
				Fraction: t,
				At:       at,
			}
		}
		prevDiff = currDiff
	}
	return nil
}
