package domain

// Record is a normalized dataset row. Sales and Discount are always
// numeric; every column other than the designated ones is kept in Fields.
type Record struct {
	Category string
	ShipMode string
	Segment  string
	Sales    float64 // 261.96
	Discount float64 // 0.2 (rate, not percent)
	Fields   map[string]string
}
