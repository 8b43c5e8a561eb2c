package aggregate

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// SalesByShipModeAndSegment totals sales per (ship mode, segment). Rows
// missing either key are ignored; negative sales are included. Totals are
// rounded once, after every row has been added.
func SalesByShipModeAndSegment(records []domain.Record) domain.SegmentSales {
	totals := make(domain.SegmentSales)

	for _, r := range records {
		if isBlank(r.ShipMode) || isBlank(r.Segment) {
			continue
		}
		bySegment, ok := totals[r.ShipMode]
		if !ok {
			bySegment = make(map[string]float64)
			totals[r.ShipMode] = bySegment
		}
		bySegment[r.Segment] += r.Sales
	}

	for _, bySegment := range totals {
		for segment, total := range bySegment {
			bySegment[segment] = round2(total)
		}
	}
	return totals
}
