package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/runway-simulator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RUNWAY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.Title != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", report.Title)
	}
	fmt.Fprintln(&buf)
	for _, sc := range reportScenarios(report) {
		fmt.Fprintf(&buf, "%s: Runway=%s FinalCash=%s Grade=%s (%s)\n",
			sc.Name,
			sc.Result.RunwayLabel(),
			FormatCurrency(sc.Result.Series.FinalCash()),
			sc.Grade,
			sc.Score.StringFixed(2),
		)
	}
	if len(report.Hires) > 0 {
		hires := make([]string, 0, len(report.Hires))
		for _, h := range report.Hires {
			hires = append(hires, fmt.Sprintf("%dx %s from month %d", h.Count, h.RoleTitle, h.Month))
		}
		fmt.Fprintf(&buf, "Hires: %s\n", strings.Join(hires, "; "))
	}
	rec := AnalyzeReport(report)
	if rec.Verdict != VerdictNone {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommendation: %s\n", rec.Headline)
	}
	return buf.Bytes(), nil
}
