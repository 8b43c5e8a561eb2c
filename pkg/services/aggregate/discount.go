package aggregate

import (
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// DiscountByCategory computes the sales-weighted average discount per
// category: sum(discount*sales) / sum(sales) * 100, rounded to 2 decimals.
//
// Rows with a blank category are ignored. Rows with sales <= 0 add nothing,
// so a category seen only through such rows is absent from the result.
func DiscountByCategory(records []domain.Record) domain.CategoryDiscounts {
	weighted := make(map[string]float64)
	sales := make(map[string]float64)

	for _, r := range records {
		if isBlank(r.Category) {
			continue
		}
		if r.Sales > 0 {
			weighted[r.Category] += r.Discount * r.Sales
			sales[r.Category] += r.Sales
		}
	}

	out := make(domain.CategoryDiscounts, len(weighted))
	for category, wsum := range weighted {
		if sales[category] > 0 {
			out[category] = round2((wsum / sales[category]) * 100)
		} else {
			out[category] = 0.0
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
