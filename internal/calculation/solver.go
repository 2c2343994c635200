package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrTargetUnreachable is returned when no rate in range reaches the target runway
var ErrTargetUnreachable = errors.New("target runway unreachable")

// RevenueGrowthSolution is the smallest annual revenue growth that reaches a target runway
type RevenueGrowthSolution struct {
	AnnualRevenueGrowthPct decimal.Decimal
	Result                 domain.RunwayResult
	Iterations             int
}

// SolveRevenueGrowthForRunway binary-searches the annual revenue growth rate in
// [MinRevenueGrowthPct, MaxRevenueGrowthPct] needed for runway >= targetMonths.
// Every other parameter is held fixed. Runway is non-decreasing in revenue
// growth, which is what makes bisection valid here.
func (pe *ProjectionEngine) SolveRevenueGrowthForRunway(params domain.SimulationParameters, injector CostInjector, targetMonths, horizon int) (*RevenueGrowthSolution, error) {
	if horizon <= 0 {
		horizon = domain.DefaultHorizon
	}
	if targetMonths < 0 || targetMonths > horizon {
		return nil, fmt.Errorf("target runway %d must be between 0 and horizon %d", targetMonths, horizon)
	}

	runAt := func(rate decimal.Decimal) domain.RunwayResult {
		p := params
		p.AnnualRevenueGrowthPct = rate
		return pe.Run(p, injector, horizon)
	}

	lo, hi := MinRevenueGrowthPct, MaxRevenueGrowthPct
	if res := runAt(lo); res.RunwayMonths >= targetMonths {
		return &RevenueGrowthSolution{AnnualRevenueGrowthPct: lo, Result: res}, nil
	}
	best := runAt(hi)
	if best.RunwayMonths < targetMonths {
		return nil, fmt.Errorf("%w: %d months even at %s%% revenue growth (best %d)",
			ErrTargetUnreachable, targetMonths, hi.String(), best.RunwayMonths)
	}

	tolerance := decimal.NewFromFloat(0.01)
	maxIterations := 50
	iterations := 0
	for ; iterations < maxIterations && hi.Sub(lo).GreaterThan(tolerance); iterations++ {
		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		res := runAt(mid)
		if res.RunwayMonths >= targetMonths {
			hi = mid
			best = res
		} else {
			lo = mid
		}
	}

	orNop(pe.Logger).Debugf("solver: target=%d rate=%s%% after %d iterations", targetMonths, hi.StringFixed(4), iterations)
	return &RevenueGrowthSolution{AnnualRevenueGrowthPct: hi, Result: best, Iterations: iterations}, nil
}
