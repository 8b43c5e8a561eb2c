package export

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Sections: []domain.ReportSection{
			{
				Title:   "Sales-Weighted Average Discount by Category",
				Columns: []string{"Category", "Avg Discount (%)"},
				Rows: []domain.ReportRow{
					{Label: "Furniture", Values: []float64{11.81}},
					{Label: "Office Supplies", Values: []float64{0.55}},
					{Label: "Technology", Values: []float64{20}},
				},
			},
			{
				Title:   "Total Sales by Ship Mode and Segment",
				Columns: []string{"Ship Mode", "Consumer", "Corporate", "Home Office"},
				Rows: []domain.ReportRow{
					{Label: "First Class", Values: []float64{0, 818.54, 0}},
					{Label: "Same Day", Values: []float64{0, 1043.92, 0}},
					{Label: "Second Class", Values: []float64{300.26, 0, 600.56}},
					{Label: "Standard Class", Values: []float64{808.58, 19.46, 0}},
				},
			},
		},
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0.0"},
		{10, "10.0"},
		{808.58, "808.58"},
		{0.5, "0.5"},
		{-56.08, "-56.08"},
		{1043.92, "1043.92"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, FormatValue(tc.in))
	}
}

func TestReporter_Handle(t *testing.T) {
	t.Run("two section layout", func(t *testing.T) {
		expected, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "testdata", "superstore_analysis.txt"))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = NewReporter(&buf, DefaultConfig()).Handle(sampleReport())

		require.NoError(t, err)
		assert.Equal(t, string(expected), buf.String())
	})

	t.Run("custom delimiter and quoting", func(t *testing.T) {
		report := &domain.Report{Sections: []domain.ReportSection{{
			Title:   "Totals",
			Columns: []string{"Ship Mode", "Consumer"},
			Rows:    []domain.ReportRow{{Label: "Express; Overnight", Values: []float64{1.5}}},
		}}}

		var buf bytes.Buffer
		err := NewReporter(&buf, Config{Delimiter: ';'}).Handle(report)

		require.NoError(t, err)
		assert.Equal(t, "Totals\nShip Mode;Consumer\n\"Express; Overnight\";1.5\n", buf.String())
	})

	t.Run("empty aggregates keep headers", func(t *testing.T) {
		report := &domain.Report{Sections: []domain.ReportSection{
			{Title: "A", Columns: []string{"Category", "Avg Discount (%)"}},
			{Title: "B", Columns: []string{"Ship Mode"}},
		}}

		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf, Config{}).Handle(report))

		assert.Equal(t, "A\nCategory,Avg Discount (%)\n\nB\nShip Mode\n", buf.String())
	})

	t.Run("invalid delimiter", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewReporter(&buf, Config{Delimiter: '"'}).Handle(sampleReport())
		assert.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReporter_WriteFailure(t *testing.T) {
	err := NewReporter(failingWriter{}, DefaultConfig()).Handle(sampleReport())
	assert.ErrorContains(t, err, "disk full")
}

func TestWorkbookReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	err := NewWorkbookReporter(&buf, Config{}).Handle(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.Equal(t, []string{"Sales-Weighted Average Discount by Category"}, rows[0])
	assert.Equal(t, []string{"Category", "Avg Discount (%)"}, rows[1])
	assert.Equal(t, []string{"Furniture", "11.81"}, rows[2])
	assert.Empty(t, rows[5])
	assert.Equal(t, []string{"Ship Mode", "Consumer", "Corporate", "Home Office"}, rows[7])
	assert.Equal(t, []string{"Standard Class", "808.58", "19.46", "0"}, rows[11])

	value, err := f.GetCellValue("Report", "C9", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "818.54", value)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	h, err := NewHandler("", &buf, DefaultConfig())
	require.NoError(t, err)
	assert.IsType(t, &Reporter{}, h)

	h, err = NewHandler(FormatXLSX, &buf, DefaultConfig())
	require.NoError(t, err)
	assert.IsType(t, &WorkbookReporter{}, h)

	_, err = NewHandler("pdf", &buf, DefaultConfig())
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "out.txt")

		require.NoError(t, WriteFile(path, FormatCSV, DefaultConfig(), sampleReport()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Standard Class,808.58,19.46,0.0\n")
	})

	t.Run("unsupported format creates nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.pdf")

		err := WriteFile(path, "pdf", DefaultConfig(), sampleReport())

		require.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
