package domain

// CategoryDiscounts maps a category to its sales-weighted average
// discount, in percent, rounded to 2 decimals.
type CategoryDiscounts map[string]float64

// SegmentSales maps ship mode -> segment -> total sales, rounded to 2 decimals.
type SegmentSales map[string]map[string]float64

// Segments returns the number of (mode, segment) pairs.
func (s SegmentSales) Segments() int {
	n := 0
	for _, bySegment := range s {
		n += len(bySegment)
	}
	return n
}
