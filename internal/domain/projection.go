package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is the state at the start of a single projected month
type ProjectionPoint struct {
	Month      int             `json:"month"`
	Cash       decimal.Decimal `json:"cash"`
	Expenses   decimal.Decimal `json:"expenses"`
	Revenue    decimal.Decimal `json:"revenue"`
	NetBurn    decimal.Decimal `json:"net_burn"`
	IsPositive bool            `json:"is_positive"`
}

// ProjectionSeries is the fixed-length (horizon+1) series indexed by month.
type ProjectionSeries []ProjectionPoint

// Clone returns an independent copy of the series
func (s ProjectionSeries) Clone() ProjectionSeries {
	if s == nil {
		return nil
	}
	out := make(ProjectionSeries, len(s))
	copy(out, s)
	return out
}

// Horizon returns the last month index in the series
func (s ProjectionSeries) Horizon() int {
	return len(s) - 1
}

// FinalCash returns the cash at the last month, or zero for an empty series
func (s ProjectionSeries) FinalCash() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].Cash
}

// RunwayResult is the outcome of one projection run.
//
// RunwayMonths equals Horizon when cash never reaches zero inside the window.
type RunwayResult struct {
	Series          ProjectionSeries `json:"series"`
	RunwayMonths    int              `json:"runway_months"`
	Horizon         int              `json:"horizon"`
	HireEventMonths []int            `json:"hire_event_months,omitempty"`
}

// ExceedsHorizon reports whether the runway was not determined within the window
func (r RunwayResult) ExceedsHorizon() bool {
	return r.RunwayMonths >= r.Horizon
}

// RunwayLabel renders the runway for display, e.g. "17 months" or "24+ months".
func (r RunwayResult) RunwayLabel() string {
	return FormatRunway(r.RunwayMonths, r.Horizon)
}

// FormatRunway renders a runway month count, marking values at the horizon with "+".
func FormatRunway(runwayMonths, horizon int) string {
	if runwayMonths >= horizon {
		return strconv.Itoa(horizon) + "+ months"
	}
	if runwayMonths == 1 {
		return "1 month"
	}
	return strconv.Itoa(runwayMonths) + " months"
}
