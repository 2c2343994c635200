package calculation

import (
	"github.com/rpgo/runway-simulator/internal/domain"
	money "github.com/rpgo/runway-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Grade thresholds on a 0-100 score; a score at a threshold earns that grade.
var (
	GradeAThreshold = decimal.NewFromInt(80)
	GradeBThreshold = decimal.NewFromInt(60)
	GradeCThreshold = decimal.NewFromInt(40)
)

// GradeOf classifies a continuous score into an ordered band
func GradeOf(score decimal.Decimal) domain.Grade {
	switch {
	case score.GreaterThanOrEqual(GradeAThreshold):
		return domain.GradeA
	case score.GreaterThanOrEqual(GradeBThreshold):
		return domain.GradeB
	case score.GreaterThanOrEqual(GradeCThreshold):
		return domain.GradeC
	default:
		return domain.GradeF
	}
}

// RunwayScore maps a result's runway onto 0-100 as a share of its horizon.
func RunwayScore(result domain.RunwayResult) decimal.Decimal {
	ratio := money.SafeRatio(decimal.NewFromInt(int64(result.RunwayMonths)), decimal.NewFromInt(int64(result.Horizon)))
	return money.Clamp(money.Percent(ratio), decimal.Zero, hundred).Round(2)
}
