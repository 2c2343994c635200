package output

import (
	"fmt"

	"github.com/rpgo/runway-simulator/internal/domain"
)

// DefaultAssumptions lists the modeling rules behind every projection.
var DefaultAssumptions = []string{
	"Monthly growth rate is the annual rate divided by 12, compounded monthly",
	"Cash is recorded at the start of each month, before that month's burn",
	"Hire costs begin in their start month and grow with the expense rate",
	"Runway is the first month cash reaches zero; later recoveries are ignored",
}

// GenerateAssumptions adds the growth rates and horizon of report to the defaults
func GenerateAssumptions(report *domain.Report) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if report == nil {
		return out
	}
	p := report.Current.Parameters
	out = append(out,
		fmt.Sprintf("Current path: expenses grow %s%%/yr, revenue grows %s%%/yr",
			p.AnnualExpenseGrowthPct.StringFixed(1), p.AnnualRevenueGrowthPct.StringFixed(1)),
		fmt.Sprintf("Projection horizon: %d months", report.Current.Result.Horizon),
	)
	return out
}
