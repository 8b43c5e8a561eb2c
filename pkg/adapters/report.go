package adapters

import (
	"slices"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

const (
	DiscountSectionTitle = "Sales-Weighted Average Discount by Category"
	SalesSectionTitle    = "Total Sales by Ship Mode and Segment"
)

// BuildReport lays out both aggregates: categories and ship modes sorted,
// one column per segment seen anywhere, 0.0 where a mode lacks a segment.
func BuildReport(discounts domain.CategoryDiscounts, sales domain.SegmentSales) *domain.Report {
	return &domain.Report{
		Sections: []domain.ReportSection{
			discountSection(discounts),
			salesSection(sales),
		},
	}
}

func discountSection(discounts domain.CategoryDiscounts) domain.ReportSection {
	categories := lo.Keys(discounts)
	slices.Sort(categories)

	return domain.ReportSection{
		Title:   DiscountSectionTitle,
		Columns: []string{"Category", "Avg Discount (%)"},
		Rows: lo.Map(categories, func(category string, _ int) domain.ReportRow {
			return domain.ReportRow{Label: category, Values: []float64{discounts[category]}}
		}),
	}
}

func salesSection(sales domain.SegmentSales) domain.ReportSection {
	segments := SegmentColumns(sales)
	modes := lo.Keys(sales)
	slices.Sort(modes)

	return domain.ReportSection{
		Title:   SalesSectionTitle,
		Columns: append([]string{"Ship Mode"}, segments...),
		Rows: lo.Map(modes, func(mode string, _ int) domain.ReportRow {
			return domain.ReportRow{
				Label: mode,
				Values: lo.Map(segments, func(segment string, _ int) float64 {
					return lo.ValueOr(sales[mode], segment, 0.0)
				}),
			}
		}),
	}
}

// SegmentColumns returns every segment present under any ship mode, sorted.
func SegmentColumns(sales domain.SegmentSales) []string {
	segments := lo.Uniq(lo.FlatMap(lo.Values(sales), func(bySegment map[string]float64, _ int) []string {
		return lo.Keys(bySegment)
	}))
	slices.Sort(segments)
	return segments
}
