package output

import (
	"bytes"
	"encoding/csv"
	"slices"
	"time"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/rpgo/runway-simulator/pkg/dateutil"
)

// CSVDetailedExporter writes every projection point of every scenario.
// The Calendar column is empty when the report has no start month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Calendar", "Cash", "Expenses", "Revenue", "NetBurn", "IsPositive", "HireEvent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	start, hasStart := reportStart(report)
	for _, sc := range reportScenarios(report) {
		for _, p := range sc.Result.Series {
			calendar := ""
			if hasStart {
				calendar = dateutil.MonthLabel(start, p.Month)
			}
			row := []string{
				sc.Name,
				intToString(p.Month),
				calendar,
				p.Cash.StringFixed(2),
				p.Expenses.StringFixed(2),
				p.Revenue.StringFixed(2),
				p.NetBurn.StringFixed(2),
				boolToString(p.IsPositive),
				boolToString(slices.Contains(sc.Result.HireEventMonths, p.Month)),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func reportStart(report *domain.Report) (time.Time, bool) {
	if report.StartMonth == "" {
		return time.Time{}, false
	}
	start, err := dateutil.DateForMonth(report.StartMonth)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}
