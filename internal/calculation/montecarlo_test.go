package calculation

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonteCarloSimulator_Defaults(t *testing.T) {
	SetSeedFunc(func() int64 { return 7 })
	t.Cleanup(func() { SetSeedFunc(func() int64 { return Now().UnixNano() }) })

	mcs := NewMonteCarloSimulator(nil, MonteCarloConfig{TargetMonths: 99})
	require.NotNil(t, mcs.Engine)
	assert.Equal(t, int64(7), mcs.Config.Seed)
	assert.Equal(t, defaultSimulations, mcs.Config.NumSimulations)
	assert.Equal(t, defaultWorkers, mcs.Config.Workers)
	assert.Equal(t, 24, mcs.Config.Horizon)
	assert.Equal(t, 24, mcs.Config.TargetMonths, "target beyond horizon falls back to horizon")
}

func TestRunSimulation_ZeroVolatilityMatchesEngine(t *testing.T) {
	for _, tc := range []struct {
		target       int
		wantSurvival int64
	}{
		{target: 17, wantSurvival: 1},
		{target: 18, wantSurvival: 0},
	} {
		mcs := NewMonteCarloSimulator(NewProjectionEngine(), MonteCarloConfig{
			NumSimulations: 20,
			Horizon:        24,
			Seed:           1,
			TargetMonths:   tc.target,
		})
		res, err := mcs.RunSimulation(context.Background(), referenceParams(), nil)
		require.NoError(t, err)
		require.Len(t, res.Simulations, 20)

		for _, sim := range res.Simulations {
			assert.Equal(t, 17, sim.RunwayMonths)
			assert.True(t, sim.AnnualExpenseGrowthPct.Equal(decimal.NewFromInt(5)))
		}
		assert.True(t, res.SurvivalRate.Equal(decimal.NewFromInt(tc.wantSurvival)), "target %d survival %s", tc.target, res.SurvivalRate)
		assert.Equal(t, RunwayPercentiles{P10: 17, P25: 17, P50: 17, P75: 17, P90: 17}, res.RunwayPercentiles)
		assert.True(t, res.MedianFinalCash.Equal(res.Simulations[0].FinalCash))
	}
}

func TestRunSimulation_ReproducibleWithSeed(t *testing.T) {
	cfg := MonteCarloConfig{
		NumSimulations:         60,
		Horizon:                36,
		Seed:                   42,
		ExpenseGrowthStdDevPct: decimal.NewFromInt(10),
		RevenueGrowthStdDevPct: decimal.NewFromInt(20),
		Workers:                4,
	}
	first, err := NewMonteCarloSimulator(NewProjectionEngine(), cfg).RunSimulation(context.Background(), referenceParams(), nil)
	require.NoError(t, err)
	cfg.Workers = 1
	second, err := NewMonteCarloSimulator(NewProjectionEngine(), cfg).RunSimulation(context.Background(), referenceParams(), nil)
	require.NoError(t, err)

	require.Len(t, second.Simulations, len(first.Simulations))
	distinct := map[string]bool{}
	for i := range first.Simulations {
		a, b := first.Simulations[i], second.Simulations[i]
		assert.Equal(t, a.RunwayMonths, b.RunwayMonths)
		assert.True(t, a.AnnualExpenseGrowthPct.Equal(b.AnnualExpenseGrowthPct))
		assert.True(t, a.FinalCash.Equal(b.FinalCash))
		distinct[a.AnnualExpenseGrowthPct.String()] = true
	}
	assert.Greater(t, len(distinct), 1, "growth rates should be sampled")

	p := first.RunwayPercentiles
	assert.LessOrEqual(t, p.P10, p.P25)
	assert.LessOrEqual(t, p.P25, p.P50)
	assert.LessOrEqual(t, p.P50, p.P75)
	assert.LessOrEqual(t, p.P75, p.P90)
	assert.True(t, first.SurvivalRate.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, first.SurvivalRate.LessThanOrEqual(decimal.NewFromInt(1)))
}

func TestRunSimulation_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mcs := NewMonteCarloSimulator(NewProjectionEngine(), MonteCarloConfig{NumSimulations: 5, Seed: 3})
	_, err := mcs.RunSimulation(ctx, referenceParams(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateRunwayPercentiles(t *testing.T) {
	var sims []SimulationOutcome
	for _, r := range []int{10, 3, 7, 1, 9, 5, 2, 8, 6, 4} {
		sims = append(sims, SimulationOutcome{RunwayMonths: r})
	}
	assert.Equal(t, RunwayPercentiles{P10: 2, P25: 3, P50: 6, P75: 8, P90: 10}, calculateRunwayPercentiles(sims))
	assert.Equal(t, RunwayPercentiles{}, calculateRunwayPercentiles(nil))
}

func TestBoxMullerTransform(t *testing.T) {
	assert.InDelta(t, 0.0, boxMullerTransform(1, 0.3), 1e-12)
	assert.InDelta(t, 1.0, boxMullerTransform(math.Exp(-0.5), 0), 1e-12)
}
