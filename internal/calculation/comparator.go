package calculation

import (
	"github.com/rpgo/runway-simulator/internal/domain"
	money "github.com/rpgo/runway-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// quarterMonths is the window used for leading/trailing revenue means
const quarterMonths = 3

var negligibleRunwayDelta = decimal.NewFromFloat(0.5)

// ScenarioComparator runs the current path (A) and the proposed strategy (B)
// side by side and reports how they diverge.
type ScenarioComparator struct {
	Engine  *ProjectionEngine
	Horizon int
}

// NewScenarioComparator creates a comparator over engine using the default horizon.
// A nil engine gets a fresh ProjectionEngine.
func NewScenarioComparator(engine *ProjectionEngine) *ScenarioComparator {
	if engine == nil {
		engine = NewProjectionEngine()
	}
	return &ScenarioComparator{Engine: engine, Horizon: domain.DefaultHorizon}
}

// Compare projects A without hires and B with eventsB, then diffs the two.
func (sc *ScenarioComparator) Compare(paramsA, paramsB domain.SimulationParameters, eventsB []domain.HireEvent) domain.ComparisonResult {
	resultA := sc.Engine.Run(paramsA, nil, sc.Horizon)

	var injector CostInjector
	if len(eventsB) > 0 {
		injector = HireSchedule(eventsB)
	}
	resultB := sc.Engine.Run(paramsB, injector, sc.Horizon)

	cmp := CompareResults(resultA, resultB)
	orNop(sc.Engine.Logger).Debugf("comparison: runway A=%d B=%d delta=%s", resultA.RunwayMonths, resultB.RunwayMonths, cmp.RunwayDeltaMonths.String())
	return cmp
}

// CompareResults diffs two already-computed projections. The series are
// aligned by month; only the overlapping months are scanned.
func CompareResults(a, b domain.RunwayResult) domain.ComparisonResult {
	delta := decimal.NewFromInt(int64(b.RunwayMonths - a.RunwayMonths))

	velocityA := RevenueVelocity(a.Series)
	velocityB := RevenueVelocity(b.Series)
	velocityDelta := velocityB.Sub(velocityA)

	return domain.ComparisonResult{
		ScenarioA:               a,
		ScenarioB:               b,
		RunwayDeltaMonths:       delta,
		IsImprovement:           delta.IsPositive(),
		IsNegligible:            delta.Abs().LessThan(negligibleRunwayDelta),
		MaxDivergence:           MaxCashDivergence(a.Series, b.Series),
		RevenueVelocityA:        velocityA,
		RevenueVelocityB:        velocityB,
		RevenueVelocityDelta:    velocityDelta,
		RevenueVelocityDeltaPct: money.Percent(money.SafeRatio(velocityDelta, velocityA.Abs())),
		Crossover:               FindCashCrossover(a.Series, b.Series),
	}
}

// MaxCashDivergence returns the month with the largest |cashA - cashB|.
// Ties resolve to the earliest month.
func MaxCashDivergence(a, b domain.ProjectionSeries) domain.MaxDivergence {
	n := min(len(a), len(b))
	var best domain.MaxDivergence
	found := false
	for i := 0; i < n; i++ {
		diff := a[i].Cash.Sub(b[i].Cash).Abs()
		if !found || diff.GreaterThan(best.AbsDifference) {
			best = domain.MaxDivergence{
				Month:         a[i].Month,
				CashA:         a[i].Cash,
				CashB:         b[i].Cash,
				AbsDifference: diff,
			}
			found = true
		}
	}
	return best
}

// RevenueVelocity is the trailing-quarter mean revenue minus the
// leading-quarter mean revenue. Series shorter than a quarter use every point.
func RevenueVelocity(series domain.ProjectionSeries) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	q := min(quarterMonths, len(series))
	return meanRevenue(series[len(series)-q:]).Sub(meanRevenue(series[:q]))
}

func meanRevenue(points domain.ProjectionSeries) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Revenue)
	}
	return money.SafeRatio(total, decimal.NewFromInt(int64(len(points))))
}
