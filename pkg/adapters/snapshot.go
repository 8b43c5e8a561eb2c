package adapters

import (
	"maps"
	"slices"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

func MapDomainRecordToStore(runID string, position int, record domain.Record) store.SalesRecord {
	return store.SalesRecord{
		RunID:    runID,
		Position: position,
		Category: record.Category,
		ShipMode: record.ShipMode,
		Segment:  record.Segment,
		Sales:    record.Sales,
		Discount: record.Discount,
		Fields:   maps.Clone(record.Fields),
	}
}

func MapStoreRecordToDomain(record store.SalesRecord) domain.Record {
	return domain.Record{
		Category: record.Category,
		ShipMode: record.ShipMode,
		Segment:  record.Segment,
		Sales:    record.Sales,
		Discount: record.Discount,
		Fields:   maps.Clone(record.Fields),
	}
}

// MapRunToSnapshot flattens a run into store rows, aggregates in key order.
func MapRunToSnapshot(
	runID, source string,
	createdAt time.Time,
	records []domain.Record,
	discounts domain.CategoryDiscounts,
	sales domain.SegmentSales,
) store.Snapshot {
	snapshot := store.Snapshot{
		RunID:     runID,
		Source:    source,
		CreatedAt: createdAt,
		Records:   make([]store.SalesRecord, 0, len(records)),
		Discounts: make([]store.CategoryDiscount, 0, len(discounts)),
		Sales:     make([]store.SegmentSales, 0, sales.Segments()),
	}

	for i, record := range records {
		snapshot.Records = append(snapshot.Records, MapDomainRecordToStore(runID, i+1, record))
	}

	for _, category := range slices.Sorted(maps.Keys(discounts)) {
		snapshot.Discounts = append(snapshot.Discounts, store.CategoryDiscount{
			RunID:       runID,
			Category:    category,
			AvgDiscount: discounts[category],
		})
	}

	for _, mode := range slices.Sorted(maps.Keys(sales)) {
		for _, segment := range slices.Sorted(maps.Keys(sales[mode])) {
			snapshot.Sales = append(snapshot.Sales, store.SegmentSales{
				RunID:      runID,
				ShipMode:   mode,
				Segment:    segment,
				TotalSales: sales[mode][segment],
			})
		}
	}

	return snapshot
}
