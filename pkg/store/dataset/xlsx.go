package dataset

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct {
	opts Options
}

// NewXLSXLoader reads the first (or the configured) sheet of a workbook.
func NewXLSXLoader(opts Options) Loader {
	return &xlsxLoader{opts: opts}
}

// Load reads every row of the sheet. Workbooks drop trailing empty cells,
// so short rows are padded with empty values instead of being skipped;
// only completely empty rows are skipped.
func (l *xlsxLoader) Load(ctx context.Context, path string) ([]store.RawRecord, store.LoadStats, error) {
	logger := zerolog.Ctx(ctx)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, store.LoadStats{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, store.LoadStats{}, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, store.LoadStats{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, store.LoadStats{}, fmt.Errorf("dataset has no header row")
	}

	h := newHeader(rows[0])
	stats := store.LoadStats{MissingColumns: h.missing(l.opts.Required)}
	if len(stats.MissingColumns) > 0 {
		logger.Warn().Strs("columns", stats.MissingColumns).Str("sheet", sheet).Msg("dataset is missing expected columns")
	}

	records := make([]store.RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		stats.Rows++
		if len(row) == 0 {
			stats.SkippedRows++
			logger.Debug().Int("row", i+2).Msg("skipping empty row")
			continue
		}
		for len(row) < len(h.names) {
			row = append(row, "")
		}
		rec, _ := h.record(row)
		records = append(records, rec)
	}

	logger.Debug().Str("sheet", sheet).Int("records", len(records)).Msg("workbook loaded")
	return records, stats, nil
}
