package output

import (
	"fmt"

	"github.com/rpgo/runway-simulator/internal/domain"
)

// Verdict classifies the proposed strategy against the current path.
type Verdict string

const (
	VerdictNone       Verdict = "none"
	VerdictExtends    Verdict = "extends"
	VerdictShortens   Verdict = "shortens"
	VerdictNegligible Verdict = "negligible"
)

// Recommendation is the one-line reading of a comparison shared by formatters.
type Recommendation struct {
	Verdict  Verdict
	Headline string
}

// AnalyzeReport summarizes the runway delta of report in a sentence.
func AnalyzeReport(report *domain.Report) Recommendation {
	if report == nil || report.Comparison == nil {
		return Recommendation{Verdict: VerdictNone}
	}
	cmp := report.Comparison
	a, b := cmp.ScenarioA.RunwayLabel(), cmp.ScenarioB.RunwayLabel()

	switch {
	case cmp.IsNegligible:
		return Recommendation{
			Verdict:  VerdictNegligible,
			Headline: fmt.Sprintf("Proposed strategy leaves runway unchanged at %s", b),
		}
	case cmp.IsImprovement:
		return Recommendation{
			Verdict:  VerdictExtends,
			Headline: fmt.Sprintf("Proposed strategy extends runway by %s (%s to %s)", FormatMonths(cmp.RunwayDeltaMonths.Abs()), a, b),
		}
	default:
		return Recommendation{
			Verdict:  VerdictShortens,
			Headline: fmt.Sprintf("Proposed strategy shortens runway by %s (%s to %s)", FormatMonths(cmp.RunwayDeltaMonths.Abs()), a, b),
		}
	}
}
