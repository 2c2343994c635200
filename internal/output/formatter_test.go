package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/config"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestReport runs the example scenario file: current path 17 months,
// lean-operations with two hires 14 months.
func buildTestReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg := config.NewInputParser().CreateExampleConfiguration()
	report, err := calculation.NewProjectionEngine().BuildReport(cfg)
	require.NoError(t, err)
	return report
}

func currentOnlyReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg := config.NewInputParser().CreateExampleConfiguration()
	cfg.Proposed = nil
	cfg.Hiring = domain.HiringConfig{}
	cfg.StartMonth = ""
	report, err := calculation.NewProjectionEngine().BuildReport(cfg)
	require.NoError(t, err)
	return report
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "RUNWAY SUMMARY"))
	assert.Contains(t, content, "Current: Runway=17 months")
	assert.Contains(t, content, "Proposed (lean-operations): Runway=14 months")
	assert.Contains(t, content, "1x Software Engineer from month 1")
	assert.Contains(t, content, "Recommendation: Proposed strategy shortens runway by 3 months (17 months to 14 months)")
}

func TestConsoleLiteFormatter_CurrentOnly(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(currentOnlyReport(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Current: Runway=17 months")
	assert.NotContains(t, content, "Recommendation")
	assert.NotContains(t, content, "Hires")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Seed runway plan")
	assert.Contains(t, content, "Key Assumptions")
	assert.Contains(t, content, DefaultAssumptions[0])
	assert.Contains(t, content, "Scenarios")
	assert.Contains(t, content, "$500,000")
	assert.Contains(t, content, "Hiring Plan")
	assert.Contains(t, content, "Jul 2027")
	assert.Contains(t, content, "Runway delta:        -3 months")
	assert.Contains(t, content, "Monthly Projection")
	assert.Contains(t, content, "Jan 2029")
	assert.Contains(t, content, "shortens runway by 3 months")
}

func TestConsoleVerboseFormatter_HorizonLabel(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	cfg.Hiring = domain.HiringConfig{}
	report, err := calculation.NewProjectionEngine().BuildReport(cfg)
	require.NoError(t, err)

	out, err := ConsoleVerboseFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "24+ months")
	assert.Contains(t, string(out), "extends runway by 7 months")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, "Current", records[1][0])
	assert.Equal(t, "17", records[1][6])
	assert.Equal(t, "17 months", records[1][7])
	assert.Equal(t, "B", records[1][11])
	assert.Equal(t, "Proposed (lean-operations)", records[2][0])
	assert.Equal(t, "36000.00", records[2][2])
	assert.Equal(t, "14", records[2][6])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	// header + 25 points per scenario
	require.Len(t, records, 1+25*2)

	first := records[1]
	assert.Equal(t, []string{"Current", "0", "Jan 2027", "500000.00", "45000.00", "15000.00", "30000.00", "true", "false"}, first)
	assert.Equal(t, "470000.00", records[2][3])
	assert.Equal(t, "false", records[18][7], "current path depleted in month 17")

	proposedMonth1 := records[1+25+1]
	assert.Equal(t, "Proposed (lean-operations)", proposedMonth1[0])
	assert.Equal(t, "true", proposedMonth1[8])
	assert.Equal(t, "true", records[1+25+6][8])
	assert.Equal(t, "false", records[1+25+2][8])
}

func TestCSVDetailedExporter_NoStartMonth(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(currentOnlyReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 26)
	assert.Equal(t, "", records[1][2])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	var decoded struct {
		Title   string `json:"title"`
		Current struct {
			Grade  string `json:"grade"`
			Result struct {
				RunwayMonths int `json:"runway_months"`
			} `json:"result"`
		} `json:"current"`
		PresetName string `json:"preset_name"`
		Comparison struct {
			RunwayDeltaMonths string `json:"runway_delta_months"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Seed runway plan", decoded.Title)
	assert.Equal(t, "B", decoded.Current.Grade)
	assert.Equal(t, 17, decoded.Current.Result.RunwayMonths)
	assert.Equal(t, "lean-operations", decoded.PresetName)
	assert.Equal(t, "-3", decoded.Comparison.RunwayDeltaMonths)
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"console-verbose": "console",
		"Verbose":         "console",
		"summary":         "console-lite",
		"csv-detailed":    "detailed-csv",
		" JSON ":          "json",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, "alias %q", alias)
		assert.Equal(t, want, f.Name())
	}
	assert.Nil(t, GetFormatterByName("html"))
}

func TestFormatterFor_UnknownIncludesSuggestions(t *testing.T) {
	_, err := FormatterFor("definitely-not-a-format")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "csv", FileExtension(CSVDetailedExporter{}))
	assert.Equal(t, "csv", FileExtension(CSVSummarizer{}))
	assert.Equal(t, "json", FileExtension(JSONFormatter{}))
	assert.Equal(t, "txt", FileExtension(ConsoleFormatter{}))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "static", F: func(*domain.Report) ([]byte, error) { return []byte("ok"), nil }}
	out, err := f.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
	assert.Equal(t, "static", f.Name())
}
