package domain

import "fmt"

const (
	ColumnCategory = "Category"
	ColumnShipMode = "Ship Mode"
	ColumnSegment  = "Segment"
	ColumnSales    = "Sales"
	ColumnDiscount = "Discount"
)

// Columns names the header fields that carry the grouping keys and the
// numeric measures.
type Columns struct {
	Category string `mapstructure:"category"`
	ShipMode string `mapstructure:"ship_mode"`
	Segment  string `mapstructure:"segment"`
	Sales    string `mapstructure:"sales"`
	Discount string `mapstructure:"discount"`
}

// DefaultColumns returns the standard superstore header names.
func DefaultColumns() Columns {
	return Columns{
		Category: ColumnCategory,
		ShipMode: ColumnShipMode,
		Segment:  ColumnSegment,
		Sales:    ColumnSales,
		Discount: ColumnDiscount,
	}
}

// Required lists the designated column names in a stable order.
func (c Columns) Required() []string {
	return []string{c.Category, c.ShipMode, c.Segment, c.Sales, c.Discount}
}

func (c Columns) String() string {
	return fmt.Sprintf("category=%q ship_mode=%q segment=%q sales=%q discount=%q",
		c.Category, c.ShipMode, c.Segment, c.Sales, c.Discount)
}
