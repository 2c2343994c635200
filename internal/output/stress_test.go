package output

import (
	"context"
	"strings"
	"testing"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stressResult(t *testing.T) *calculation.MonteCarloResult {
	t.Helper()
	params := domain.SimulationParameters{
		CashOnHand:             decimal.NewFromInt(500000),
		MonthlyExpenses:        decimal.NewFromInt(45000),
		MonthlyRevenue:         decimal.NewFromInt(15000),
		AnnualExpenseGrowthPct: decimal.NewFromInt(5),
		AnnualRevenueGrowthPct: decimal.NewFromInt(10),
	}
	mcs := calculation.NewMonteCarloSimulator(calculation.NewProjectionEngine(), calculation.MonteCarloConfig{
		NumSimulations: 10,
		Horizon:        24,
		Seed:           5,
		TargetMonths:   12,
	})
	res, err := mcs.RunSimulation(context.Background(), params, nil)
	require.NoError(t, err)
	return res
}

func TestFormatStressTest_Console(t *testing.T) {
	data, err := FormatStressTest(stressResult(t), "verbose")
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "RUNWAY STRESS TEST")
	assert.Contains(t, out, "Survive 12 months")
	assert.Contains(t, out, "100.00%")
	assert.Contains(t, out, "17 months")
	assert.Contains(t, out, "keep cash positive for 12 months")
}

func TestFormatStressTest_CSV(t *testing.T) {
	data, err := FormatStressTest(stressResult(t), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Simulation,AnnualExpenseGrowthPct,AnnualRevenueGrowthPct,RunwayMonths,Runway,FinalCash,Survived", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,5.00,10.00,17,17 months,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",true"), lines[1])
}

func TestFormatStressTest_JSONAndErrors(t *testing.T) {
	data, err := FormatStressTest(stressResult(t), "json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"target_months": 12`)

	_, err = FormatStressTest(stressResult(t), "html")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FormatStressTest(nil, "console")
	assert.Error(t, err)
}
