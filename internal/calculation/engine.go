package calculation

import (
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// CostInjector supplies additional monthly cost active at a given month.
type CostInjector interface {
	ImpactAtMonth(month int) decimal.Decimal
}

// CostFunc adapter to allow ordinary functions to act as a CostInjector.
type CostFunc func(month int) decimal.Decimal

func (f CostFunc) ImpactAtMonth(month int) decimal.Decimal { return f(month) }

// eventMonthsProvider is implemented by injectors that know their activation months.
type eventMonthsProvider interface {
	EventMonths() []int
}

// ProjectionEngine produces monthly cash projections and runway figures.
// Runs are pure: the engine keeps no state between calls beyond its logger.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = orNop(l)
}

// Run projects params over horizon months (DefaultHorizon when horizon <= 0).
// injector may be nil.
//
// Each point records cash at the start of its month, before that month's
// burn is subtracted. RunwayMonths is the first month whose recorded cash is
// at or below zero; later recoveries do not move it. When cash never reaches
// zero it equals the horizon. Growth is not clamped, so extreme rates yield
// very large values.
func (pe *ProjectionEngine) Run(params domain.SimulationParameters, injector CostInjector, horizon int) domain.RunwayResult {
	log := orNop(pe.Logger)
	if horizon <= 0 {
		horizon = domain.DefaultHorizon
	}
	if params.HasNegativeMoney() {
		log.Warnf("projection inputs contain negative money (cash=%s expenses=%s revenue=%s); results are unreliable",
			params.CashOnHand.StringFixed(2), params.MonthlyExpenses.StringFixed(2), params.MonthlyRevenue.StringFixed(2))
	}

	expenseRate := MonthlyRate(params.AnnualExpenseGrowthPct)
	revenueRate := MonthlyRate(params.AnnualRevenueGrowthPct)

	series := make(domain.ProjectionSeries, horizon+1)
	cash := params.CashOnHand
	runway := -1

	for month := 0; month <= horizon; month++ {
		additionalCost := decimal.Zero
		if injector != nil {
			additionalCost = injector.ImpactAtMonth(month)
		}

		expenses := ApplyGrowth(params.MonthlyExpenses.Add(additionalCost), expenseRate, month)
		revenue := ApplyGrowth(params.MonthlyRevenue, revenueRate, month)
		netBurn := expenses.Sub(revenue)

		series[month] = domain.ProjectionPoint{
			Month:      month,
			Cash:       cash,
			Expenses:   expenses,
			Revenue:    revenue,
			NetBurn:    netBurn,
			IsPositive: cash.IsPositive(),
		}

		if runway < 0 && cash.LessThanOrEqual(decimal.Zero) {
			runway = month
		}

		cash = cash.Sub(netBurn)
	}

	if runway < 0 {
		runway = horizon
	}

	result := domain.RunwayResult{
		Series:       series,
		RunwayMonths: runway,
		Horizon:      horizon,
	}
	if p, ok := injector.(eventMonthsProvider); ok {
		result.HireEventMonths = p.EventMonths()
	}

	log.Debugf("projection: cash=%s burn=%s runway=%d/%d", params.CashOnHand.StringFixed(2), params.NetBurn().StringFixed(2), runway, horizon)
	return result
}
