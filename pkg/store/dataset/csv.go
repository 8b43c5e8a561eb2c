package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

type csvLoader struct {
	opts Options
}

// NewCSVLoader reads comma-separated files unless opts.Delimiter says otherwise.
func NewCSVLoader(opts Options) Loader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &csvLoader{opts: opts}
}

// NewTSVLoader reads tab-separated files unless opts.Delimiter says otherwise.
func NewTSVLoader(opts Options) Loader {
	if opts.Delimiter == 0 {
		opts.Delimiter = '\t'
	}
	return &csvLoader{opts: opts}
}

func (l *csvLoader) Load(ctx context.Context, path string) ([]store.RawRecord, store.LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, store.LoadStats{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadDelimited(ctx, f, l.opts)
}

// ReadDelimited parses a header row followed by data rows. Rows with fewer
// fields than the header are skipped and counted.
func ReadDelimited(ctx context.Context, r io.Reader, opts Options) ([]store.RawRecord, store.LoadStats, error) {
	logger := zerolog.Ctx(ctx)

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	// Stray quotes inside unquoted cells are kept as text.
	reader.LazyQuotes = true

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, store.LoadStats{}, fmt.Errorf("dataset has no header row")
	}
	if err != nil {
		return nil, store.LoadStats{}, fmt.Errorf("read header: %w", err)
	}

	h := newHeader(first)
	stats := store.LoadStats{MissingColumns: h.missing(opts.Required)}
	if len(stats.MissingColumns) > 0 {
		logger.Warn().Strs("columns", stats.MissingColumns).Msg("dataset is missing expected columns")
	}

	records := make([]store.RawRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, store.LoadStats{}, fmt.Errorf("read row: %w", err)
		}

		stats.Rows++
		rec, ok := h.record(row)
		if !ok {
			stats.SkippedRows++
			line, _ := reader.FieldPos(0)
			logger.Debug().
				Int("line", line).
				Int("fields", len(row)).
				Int("expected", len(h.names)).
				Msg("skipping truncated row")
			continue
		}
		records = append(records, rec)
	}

	return records, stats, nil
}
