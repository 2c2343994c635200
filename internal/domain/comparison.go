package domain

import (
	"github.com/shopspring/decimal"
)

// MaxDivergence is the month with the largest absolute cash gap between scenarios
type MaxDivergence struct {
	Month         int             `json:"month"`
	CashA         decimal.Decimal `json:"cash_a"`
	CashB         decimal.Decimal `json:"cash_b"`
	AbsDifference decimal.Decimal `json:"abs_difference"`
}

// CashCrossover marks where scenario B's cash overtakes scenario A's.
// Fraction is the interpolated position between Month-1 and Month.
type CashCrossover struct {
	Month    int             `json:"month"`
	Fraction decimal.Decimal `json:"fraction"`
	At       decimal.Decimal `json:"at"`
}

// ComparisonResult summarizes how the proposed strategy (B) differs from the current path (A).
type ComparisonResult struct {
	ScenarioA RunwayResult `json:"scenario_a"`
	ScenarioB RunwayResult `json:"scenario_b"`

	RunwayDeltaMonths decimal.Decimal `json:"runway_delta_months"`
	IsImprovement     bool            `json:"is_improvement"`
	IsNegligible      bool            `json:"is_negligible"`
	MaxDivergence     MaxDivergence   `json:"max_divergence"`

	RevenueVelocityA     decimal.Decimal `json:"revenue_velocity_a"`
	RevenueVelocityB     decimal.Decimal `json:"revenue_velocity_b"`
	RevenueVelocityDelta decimal.Decimal `json:"revenue_velocity_delta"`
	// Zero when scenario A's velocity is zero
	RevenueVelocityDeltaPct decimal.Decimal `json:"revenue_velocity_delta_pct"`

	Crossover *CashCrossover `json:"crossover,omitempty"`
}

// Grade is an ordered discrete band for a continuous 0-100 score
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeF Grade = "F"
)

// ScenarioReport is one scenario's section of a report
type ScenarioReport struct {
	Name       string               `json:"name"`
	Parameters SimulationParameters `json:"parameters"`
	Result     RunwayResult         `json:"result"`
	Score      decimal.Decimal      `json:"score"`
	Grade      Grade                `json:"grade"`
}

// Report is what output formatters render.
// Proposed and Comparison are nil when only the current path was simulated.
type Report struct {
	Title      string            `json:"title"`
	StartMonth string            `json:"start_month,omitempty"`
	Current    ScenarioReport    `json:"current"`
	Proposed   *ScenarioReport   `json:"proposed,omitempty"`
	PresetName string            `json:"preset_name,omitempty"`
	Hires      []HireEvent       `json:"hires,omitempty"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
}
