package calculation

import (
	"sort"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// HireSchedule is the sparse set of hire events derived from a role set.
// It implements CostInjector so it can be fed straight into a projection.
type HireSchedule []domain.HireEvent

// BuildEvents derives one event per role with a positive count. Roles with
// count zero contribute nothing regardless of start month.
//
// Duplicate role IDs are not merged here; keeping IDs unique is the caller's
// job (HiringPlan does this).
func BuildEvents(roles []domain.HireRole) HireSchedule {
	events := make(HireSchedule, 0, len(roles))
	for i, role := range roles {
		if role.Count <= 0 {
			continue
		}
		events = append(events, domain.HireEvent{
			Month:         role.StartMonth,
			RoleID:        role.ID,
			RoleTitle:     role.Title,
			Count:         role.Count,
			MonthlySalary: role.MonthlySalary,
			Color:         domain.PaletteColor(i),
		})
	}
	return events
}

// ImpactAtMonth sums count * salary over every event whose start month is at
// or before month. Hires are never reversed, so the result is non-decreasing in month.
func ImpactAtMonth(events []domain.HireEvent, month int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		if e.Month <= month {
			total = total.Add(e.MonthlyCost())
		}
	}
	return total
}

// ImpactAtMonth implements CostInjector
func (s HireSchedule) ImpactAtMonth(month int) decimal.Decimal {
	return ImpactAtMonth(s, month)
}

// EventMonths returns the distinct start months in ascending order
func (s HireSchedule) EventMonths() []int {
	seen := make(map[int]struct{}, len(s))
	months := make([]int, 0, len(s))
	for _, e := range s {
		if _, ok := seen[e.Month]; ok {
			continue
		}
		seen[e.Month] = struct{}{}
		months = append(months, e.Month)
	}
	sort.Ints(months)
	return months
}

// TotalMonthlyCost is the impact once every scheduled hire is active
func (s HireSchedule) TotalMonthlyCost() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s {
		total = total.Add(e.MonthlyCost())
	}
	return total
}
