package cart

import (
	"fmt"

	"github.com/ceer-dev/optimarketsrl/internal/measure"
)

// QuantityLabel renders a raw unit count in the category's sale unit. It is
// the single source of truth for quantity wording: the cart view and the
// outbound order message both call it, so the same (category, quantity) pair
// always reads identically.
//
// Lentilla entries are priced per lens, and two lenses make one pair:
// 1 → "1/2 (1 unidad)", 2 → "1 Par (2 unidades)", 3 → "1 Par y medio
// (3 unidades)", 5 → "2 Pares y medio (5 unidades)". Material Listo and Block
// already come as pairs, so the count maps straight to "N Par(es)". Montura
// and unknown categories use a bare count.
func QuantityLabel(category string, qty int) string {
	switch category {
	case measure.CategoryLens:
		return lensLabel(qty)
	case measure.CategoryReady, measure.CategoryBlock:
		if qty == 1 {
			return "1 Par"
		}
		return fmt.Sprintf("%d Pares", qty)
	default:
		return fmt.Sprintf("%d", qty)
	}
}

func lensLabel(qty int) string {
	if qty == 1 {
		return "1/2 (1 unidad)"
	}

	pairs := qty / 2
	word := "Par"
	if pairs > 1 {
		word = "Pares"
	}

	if qty%2 == 0 {
		return fmt.Sprintf("%d %s (%d unidades)", pairs, word, qty)
	}
	return fmt.Sprintf("%d %s y medio (%d unidades)", pairs, word, qty)
}
