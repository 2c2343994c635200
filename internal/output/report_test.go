package output_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/config"
	"github.com/rpgo/runway-simulator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	cfg := config.NewInputParser().CreateExampleConfiguration()
	report, err := calculation.NewProjectionEngine().BuildReport(cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := output.GenerateReport(report, "csv-summary", dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "runway_report_20261016_093000.csv")}, files)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Proposed (lean-operations)")

	files, err = output.GenerateReport(report, "all", dir)
	require.NoError(t, err)
	assert.Len(t, files, 3)
	for _, f := range files {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}

	_, err = output.GenerateReport(report, "pdf", dir)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}
