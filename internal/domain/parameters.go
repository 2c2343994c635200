package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultHorizon is the number of months a projection covers
const DefaultHorizon = 24

// SimulationParameters is the immutable input to a single projection run.
// Values are passed by value; two scenarios never share an instance.
//
// Negative money fields are not rejected by the engine. Callers are expected
// to clamp inputs before they get here.
type SimulationParameters struct {
	CashOnHand             decimal.Decimal `yaml:"cash_on_hand" json:"cash_on_hand"`
	MonthlyExpenses        decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	MonthlyRevenue         decimal.Decimal `yaml:"monthly_revenue" json:"monthly_revenue"`
	AnnualExpenseGrowthPct decimal.Decimal `yaml:"annual_expense_growth_pct" json:"annual_expense_growth_pct"`
	AnnualRevenueGrowthPct decimal.Decimal `yaml:"annual_revenue_growth_pct" json:"annual_revenue_growth_pct"`
}

// NetBurn returns month-zero expenses minus revenue
func (p SimulationParameters) NetBurn() decimal.Decimal {
	return p.MonthlyExpenses.Sub(p.MonthlyRevenue)
}

// Equal reports value equality across every field
func (p SimulationParameters) Equal(other SimulationParameters) bool {
	return p.CashOnHand.Equal(other.CashOnHand) &&
		p.MonthlyExpenses.Equal(other.MonthlyExpenses) &&
		p.MonthlyRevenue.Equal(other.MonthlyRevenue) &&
		p.AnnualExpenseGrowthPct.Equal(other.AnnualExpenseGrowthPct) &&
		p.AnnualRevenueGrowthPct.Equal(other.AnnualRevenueGrowthPct)
}

// HasNegativeMoney reports whether any money field is below zero
func (p SimulationParameters) HasNegativeMoney() bool {
	return p.CashOnHand.IsNegative() || p.MonthlyExpenses.IsNegative() || p.MonthlyRevenue.IsNegative()
}

// Preset is a named set of relative modifiers used to derive a proposed
// strategy from the current path.
type Preset struct {
	Name               string          `yaml:"name" json:"name"`
	Description        string          `yaml:"description,omitempty" json:"description,omitempty"`
	BurnModifierPct    decimal.Decimal `yaml:"burn_modifier_pct" json:"burn_modifier_pct"`
	ExpenseModifierPct decimal.Decimal `yaml:"expense_modifier_pct" json:"expense_modifier_pct"`
	RevenueModifierPct decimal.Decimal `yaml:"revenue_modifier_pct" json:"revenue_modifier_pct"`
	CashModifierAbs    decimal.Decimal `yaml:"cash_modifier_abs" json:"cash_modifier_abs"`
}
