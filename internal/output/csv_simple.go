package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/runway-simulator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "CashOnHand", "MonthlyExpenses", "MonthlyRevenue", "AnnualExpenseGrowthPct", "AnnualRevenueGrowthPct", "RunwayMonths", "Runway", "Horizon", "FinalCash", "Score", "Grade"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range reportScenarios(report) {
		p := sc.Parameters
		row := []string{
			sc.Name,
			p.CashOnHand.StringFixed(2),
			p.MonthlyExpenses.StringFixed(2),
			p.MonthlyRevenue.StringFixed(2),
			p.AnnualExpenseGrowthPct.StringFixed(2),
			p.AnnualRevenueGrowthPct.StringFixed(2),
			intToString(sc.Result.RunwayMonths),
			sc.Result.RunwayLabel(),
			intToString(sc.Result.Horizon),
			sc.Result.Series.FinalCash().StringFixed(2),
			sc.Score.StringFixed(2),
			string(sc.Grade),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// reportScenarios returns the current path followed by the proposed strategy when present.
func reportScenarios(report *domain.Report) []domain.ScenarioReport {
	out := []domain.ScenarioReport{report.Current}
	if report.Proposed != nil {
		out = append(out, *report.Proposed)
	}
	return out
}
