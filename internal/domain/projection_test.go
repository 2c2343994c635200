package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRunway(t *testing.T) {
	assert.Equal(t, "17 months", FormatRunway(17, 24))
	assert.Equal(t, "1 month", FormatRunway(1, 24))
	assert.Equal(t, "0 months", FormatRunway(0, 24))
	assert.Equal(t, "24+ months", FormatRunway(24, 24))
	assert.Equal(t, "36+ months", FormatRunway(36, 36))
}

func TestRunwayResult_ExceedsHorizon(t *testing.T) {
	r := RunwayResult{RunwayMonths: 24, Horizon: 24}
	assert.True(t, r.ExceedsHorizon())
	assert.Equal(t, "24+ months", r.RunwayLabel())

	r.RunwayMonths = 23
	assert.False(t, r.ExceedsHorizon())
}

func TestProjectionSeries_Clone(t *testing.T) {
	s := ProjectionSeries{
		{Month: 0, Cash: decimal.NewFromInt(100)},
		{Month: 1, Cash: decimal.NewFromInt(50)},
	}
	c := s.Clone()
	c[0].Cash = decimal.NewFromInt(999)

	assert.True(t, s[0].Cash.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, s.Horizon())
	assert.True(t, s.FinalCash().Equal(decimal.NewFromInt(50)))
	assert.Nil(t, ProjectionSeries(nil).Clone())
	assert.True(t, ProjectionSeries{}.FinalCash().IsZero())
}

func TestSimulationParameters_Equal(t *testing.T) {
	a := SimulationParameters{
		CashOnHand:      decimal.NewFromInt(500000),
		MonthlyExpenses: decimal.NewFromInt(45000),
		MonthlyRevenue:  decimal.NewFromInt(15000),
	}
	b := a
	assert.True(t, a.Equal(b))
	assert.True(t, a.NetBurn().Equal(decimal.NewFromInt(30000)))

	b.AnnualRevenueGrowthPct = decimal.NewFromInt(1)
	assert.False(t, a.Equal(b))

	// Equal compares values, not representation
	c := a
	c.CashOnHand = decimal.RequireFromString("500000.00")
	assert.True(t, a.Equal(c))
}

func TestSimulationParameters_HasNegativeMoney(t *testing.T) {
	p := SimulationParameters{CashOnHand: decimal.NewFromInt(1)}
	assert.False(t, p.HasNegativeMoney())
	p.MonthlyRevenue = decimal.NewFromInt(-1)
	assert.True(t, p.HasNegativeMoney())
}

func TestHireRole_MonthlyCost(t *testing.T) {
	r := HireRole{MonthlySalary: decimal.NewFromInt(10000), Count: 2}
	assert.True(t, r.MonthlyCost().Equal(decimal.NewFromInt(20000)))
	r.Count = 0
	assert.True(t, r.MonthlyCost().IsZero())
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	s := Snapshot{ID: "a", Series: ProjectionSeries{{Month: 0, Cash: decimal.NewFromInt(1)}}}
	c := s.Clone()
	c.Series[0].Cash = decimal.NewFromInt(2)
	assert.True(t, s.Series[0].Cash.Equal(decimal.NewFromInt(1)))
}

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, Palette[0], PaletteColor(0))
	assert.Equal(t, Palette[1], PaletteColor(len(Palette)+1))
	assert.Equal(t, Palette[2], PaletteColor(-2))
}

func TestConfiguration_EffectiveHorizon(t *testing.T) {
	c := &Configuration{}
	assert.Equal(t, DefaultHorizon, c.EffectiveHorizon())
	c.Horizon = 36
	assert.Equal(t, 36, c.EffectiveHorizon())
}
