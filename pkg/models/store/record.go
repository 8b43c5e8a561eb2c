package store

import "time"

// RawRecord is one dataset row as read from the source file: trimmed
// header name -> trimmed cell value.
type RawRecord map[string]string

// LoadStats describes what a loader saw while reading a dataset.
type LoadStats struct {
	Rows           int
	SkippedRows    int
	MissingColumns []string
}

// SalesRecord is the persisted form of a normalized record.
type SalesRecord struct {
	RunID    string
	Position int
	Category string
	ShipMode string
	Segment  string
	Sales    float64
	Discount float64
	Fields   map[string]string
}

type CategoryDiscount struct {
	RunID       string
	Category    string
	AvgDiscount float64
}

type SegmentSales struct {
	RunID      string
	ShipMode   string
	Segment    string
	TotalSales float64
}

// Snapshot is everything persisted for a single report run.
type Snapshot struct {
	RunID     string
	Source    string
	CreatedAt time.Time
	Records   []SalesRecord
	Discounts []CategoryDiscount
	Sales     []SegmentSales
}
