package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/rpgo/runway-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full styled report: parameters, hires,
// comparison metrics and the month-by-month series.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	title := report.Title
	if title == "" {
		title = "Runway Report"
	}
	fmt.Fprintln(&buf, RenderTitle(title))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "  "+headerStyle.Render("Key Assumptions"))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "  %s %s\n", dimStyle.Render("•"), mutedStyle.Render(a))
	}
	fmt.Fprintln(&buf)

	scenarios := reportScenarios(report)
	fmt.Fprint(&buf, RenderTable(scenarioTable(scenarios)))
	fmt.Fprintln(&buf)

	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "  %-28s %s\n", sc.Name, mutedStyle.Render(RenderSparkline(cashValues(sc.Result.Series))))
	}
	fmt.Fprintln(&buf)

	if len(report.Hires) > 0 {
		fmt.Fprint(&buf, RenderTable(hiresTable(report)))
		fmt.Fprintln(&buf)
	}

	if cmp := report.Comparison; cmp != nil {
		writeComparison(&buf, cmp)
	}

	fmt.Fprint(&buf, RenderTable(seriesTable(report, scenarios)))

	rec := AnalyzeReport(report)
	switch rec.Verdict {
	case VerdictExtends:
		fmt.Fprintf(&buf, "\n  %s\n", goodStyle.Render(rec.Headline))
	case VerdictShortens:
		fmt.Fprintf(&buf, "\n  %s\n", badStyle.Render(rec.Headline))
	case VerdictNegligible:
		fmt.Fprintf(&buf, "\n  %s\n", warnStyle.Render(rec.Headline))
	}
	return buf.Bytes(), nil
}

func scenarioTable(scenarios []domain.ScenarioReport) Table {
	t := Table{Title: "Scenarios", Headers: []string{""}}
	for _, sc := range scenarios {
		t.Headers = append(t.Headers, sc.Name)
	}
	row := func(label string, cell func(sc domain.ScenarioReport) string) {
		r := []string{label}
		for _, sc := range scenarios {
			r = append(r, cell(sc))
		}
		t.Rows = append(t.Rows, r)
	}

	row("Cash on hand", func(sc domain.ScenarioReport) string { return FormatCurrency(sc.Parameters.CashOnHand) })
	row("Monthly expenses", func(sc domain.ScenarioReport) string { return FormatCurrency(sc.Parameters.MonthlyExpenses) })
	row("Monthly revenue", func(sc domain.ScenarioReport) string { return FormatCurrency(sc.Parameters.MonthlyRevenue) })
	row("Net burn", func(sc domain.ScenarioReport) string { return FormatCurrency(sc.Parameters.NetBurn()) })
	row("Expense growth", func(sc domain.ScenarioReport) string { return FormatPercentage(sc.Parameters.AnnualExpenseGrowthPct) })
	row("Revenue growth", func(sc domain.ScenarioReport) string { return FormatPercentage(sc.Parameters.AnnualRevenueGrowthPct) })
	t.Rows = append(t.Rows, []string{"---"})
	row("Runway", func(sc domain.ScenarioReport) string { return sc.Result.RunwayLabel() })
	row("Final cash", func(sc domain.ScenarioReport) string { return FormatCurrency(sc.Result.Series.FinalCash()) })
	row("Score", func(sc domain.ScenarioReport) string { return sc.Score.StringFixed(2) + " (" + string(sc.Grade) + ")" })
	return t
}

func hiresTable(report *domain.Report) Table {
	start, hasStart := reportStart(report)
	t := Table{Title: "Hiring Plan", Headers: []string{"Role", "Count", "Salary", "Starts", "Monthly cost"}}
	for _, h := range report.Hires {
		starts := "month " + intToString(h.Month)
		if hasStart {
			starts = dateutil.MonthLabel(start, h.Month)
		}
		t.Rows = append(t.Rows, []string{
			h.RoleTitle,
			intToString(h.Count),
			FormatCurrency(h.MonthlySalary),
			starts,
			FormatCurrency(h.MonthlyCost()),
		})
	}
	return t
}

func writeComparison(buf *bytes.Buffer, cmp *domain.ComparisonResult) {
	delta := FormatMonthsDelta(cmp.RunwayDeltaMonths)
	switch {
	case cmp.IsNegligible:
		delta = warnStyle.Render(delta)
	case cmp.IsImprovement:
		delta = goodStyle.Render(delta)
	default:
		delta = badStyle.Render(delta)
	}

	div := cmp.MaxDivergence
	fmt.Fprintln(buf, "  "+headerStyle.Render("Comparison"))
	fmt.Fprintf(buf, "  Runway delta:        %s\n", delta)
	fmt.Fprintf(buf, "  Max divergence:      %s in month %d (%s vs %s)\n",
		FormatCurrency(div.AbsDifference), div.Month, FormatCurrency(div.CashA), FormatCurrency(div.CashB))
	fmt.Fprintf(buf, "  Revenue velocity:    %s vs %s per month (%s, %s)\n",
		FormatCurrency(cmp.RevenueVelocityA), FormatCurrency(cmp.RevenueVelocityB),
		FormatCurrency(cmp.RevenueVelocityDelta), FormatPercentage(cmp.RevenueVelocityDeltaPct))
	if cmp.Crossover != nil {
		fmt.Fprintf(buf, "  Cash crossover:      month %s at %s\n",
			cmp.Crossover.Fraction.Add(decimal.NewFromInt(int64(cmp.Crossover.Month-1))).StringFixed(1), FormatCurrency(cmp.Crossover.At))
	} else {
		fmt.Fprintf(buf, "  Cash crossover:      %s\n", mutedStyle.Render("none"))
	}
	fmt.Fprintln(buf)
}

func seriesTable(report *domain.Report, scenarios []domain.ScenarioReport) Table {
	start, hasStart := reportStart(report)
	t := Table{Title: "Monthly Projection", Headers: []string{"Month"}}
	if hasStart {
		t.Headers = append(t.Headers, "Calendar")
	}
	for _, sc := range scenarios {
		t.Headers = append(t.Headers, sc.Name+" cash", sc.Name+" burn")
	}

	n := len(scenarios[0].Result.Series)
	for i := 0; i < n; i++ {
		r := []string{intToString(i)}
		if hasStart {
			r = append(r, dateutil.MonthLabel(start, i))
		}
		for _, sc := range scenarios {
			if i >= len(sc.Result.Series) {
				r = append(r, "", "")
				continue
			}
			p := sc.Result.Series[i]
			cash := FormatCurrency(p.Cash)
			if !p.IsPositive {
				cash += " !"
			}
			r = append(r, cash, FormatCurrency(p.NetBurn))
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

func cashValues(series domain.ProjectionSeries) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Cash.InexactFloat64()
	}
	return out
}
