package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundredPct = decimal.NewFromInt(100)
	halfRate   = decimal.NewFromFloat(0.5)
	mostRate   = decimal.NewFromFloat(0.9)
)

// FormatStressTest renders a Monte Carlo stress test. Console formats share a
// styled summary, csv formats list one row per simulation.
func FormatStressTest(res *calculation.MonteCarloResult, format string) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("stress test result is required")
	}
	switch NormalizeFormatName(format) {
	case "console", "console-lite":
		return stressConsole(res), nil
	case "json":
		return json.MarshalIndent(res, "", "  ")
	case "csv", "detailed-csv":
		return stressCSV(res)
	default:
		return nil, fmt.Errorf("%w for stress test: %q", ErrUnsupportedFormat, format)
	}
}

func stressConsole(res *calculation.MonteCarloResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, RenderTitle("RUNWAY STRESS TEST"))
	fmt.Fprintln(&buf)

	runway := func(m int) string { return domain.FormatRunway(m, res.Horizon) }
	p, cash := res.RunwayPercentiles, res.FinalCashPercentiles
	fmt.Fprint(&buf, RenderTable(Table{
		Title:   "Distribution",
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Simulations", intToString(res.NumSimulations)},
			{"Seed", fmt.Sprint(res.Seed)},
			{"Horizon", FormatMonths(decimal.NewFromInt(int64(res.Horizon)))},
			{fmt.Sprintf("Survive %d months", res.TargetMonths), FormatPercentage(res.SurvivalRate.Mul(hundredPct))},
			{"---"},
			{"Runway P10", runway(p.P10)},
			{"Runway P25", runway(p.P25)},
			{"Runway P50", runway(p.P50)},
			{"Runway P75", runway(p.P75)},
			{"Runway P90", runway(p.P90)},
			{"---"},
			{"Final cash P10", FormatCurrency(cash.P10)},
			{"Final cash P50", FormatCurrency(cash.P50)},
			{"Final cash P90", FormatCurrency(cash.P90)},
		},
	}))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "  %-28s %s\n", "Runway distribution", mutedStyle.Render(RenderSparkline(runwayHistogram(res))))
	fmt.Fprintf(&buf, "  %-28s %s\n", "", dimStyle.Render(fmt.Sprintf("0 .. %d months", res.Horizon)))

	verdict := goodStyle
	switch {
	case res.SurvivalRate.LessThan(halfRate):
		verdict = badStyle
	case res.SurvivalRate.LessThan(mostRate):
		verdict = warnStyle
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  %s\n", verdict.Render(fmt.Sprintf("%s of simulations keep cash positive for %d months",
		FormatPercentage(res.SurvivalRate.Mul(hundredPct)), res.TargetMonths)))
	return buf.Bytes()
}

// runwayHistogram counts simulations per runway month over 0..horizon.
func runwayHistogram(res *calculation.MonteCarloResult) []float64 {
	counts := make([]float64, res.Horizon+1)
	for _, sim := range res.Simulations {
		m := max(0, min(sim.RunwayMonths, res.Horizon))
		counts[m]++
	}
	return counts
}

func stressCSV(res *calculation.MonteCarloResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Simulation", "AnnualExpenseGrowthPct", "AnnualRevenueGrowthPct", "RunwayMonths", "Runway", "FinalCash", "Survived"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, sim := range res.Simulations {
		row := []string{
			intToString(i + 1),
			sim.AnnualExpenseGrowthPct.StringFixed(2),
			sim.AnnualRevenueGrowthPct.StringFixed(2),
			intToString(sim.RunwayMonths),
			domain.FormatRunway(sim.RunwayMonths, res.Horizon),
			sim.FinalCash.StringFixed(2),
			boolToString(sim.Survived),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
