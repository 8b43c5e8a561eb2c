package normalize

import (
	"fmt"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// ParseError reports a non-empty numeric field that is not a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field %q: cannot parse %q as a number: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize converts a raw row into a typed record. A missing or empty
// Sales or Discount becomes 0.
func Normalize(raw store.RawRecord, cols domain.Columns) (domain.Record, error) {
	sales, err := parseAmount(raw, cols.Sales)
	if err != nil {
		return domain.Record{}, err
	}
	discount, err := parseAmount(raw, cols.Discount)
	if err != nil {
		return domain.Record{}, err
	}

	fields := make(map[string]string, len(raw))
	for name, value := range raw {
		switch name {
		case cols.Category, cols.ShipMode, cols.Segment, cols.Sales, cols.Discount:
			continue
		}
		fields[name] = value
	}

	return domain.Record{
		Category: raw[cols.Category],
		ShipMode: raw[cols.ShipMode],
		Segment:  raw[cols.Segment],
		Sales:    sales,
		Discount: discount,
		Fields:   fields,
	}, nil
}

// NormalizeAll normalizes every row and stops at the first failure. The
// returned error wraps the *ParseError with the 1-based record position.
func NormalizeAll(raws []store.RawRecord, cols domain.Columns) ([]domain.Record, error) {
	records := make([]domain.Record, 0, len(raws))
	for i, raw := range raws {
		record, err := Normalize(raw, cols)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseAmount(raw store.RawRecord, field string) (float64, error) {
	value, ok := raw[field]
	if !ok || value == "" {
		return 0.0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return f, nil
}
