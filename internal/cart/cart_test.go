package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ceer-dev/optimarketsrl/internal/catalog"
	"github.com/ceer-dev/optimarketsrl/internal/measure"
)

func entry(id string, price float64) catalog.Entry {
	return catalog.Entry{
		ID:            id,
		Category:      measure.CategoryLens,
		SubMaterial:   "Organico Blanco",
		Measure:       "Medida: +1.25",
		PriceInvoiced: price,
	}
}

func TestAddLineDedupesByID(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 1)
	c.AddLine(entry("b", 30), 2)
	c.AddLine(entry("a", 25), 3)

	want := []Line{
		{Entry: entry("a", 25), Qty: 4},
		{Entry: entry("b", 30), Qty: 2},
	}
	if diff := cmp.Diff(want, c.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestAddLineClampsQuantity(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 0)
	c.AddLine(entry("b", 30), -5)

	for i, l := range c.Lines() {
		if l.Qty != 1 {
			t.Errorf("line %d: expected quantity clamped to 1, got %d", i, l.Qty)
		}
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 2)

	c.UpdateQuantity(0, 3)
	if got := c.Lines()[0].Qty; got != 5 {
		t.Errorf("after +3: expected 5, got %d", got)
	}

	// Decrementing below 1 clamps instead of removing the line.
	c.UpdateQuantity(0, -10)
	if got := c.Lines()[0].Qty; got != 1 {
		t.Errorf("after -10: expected clamp to 1, got %d", got)
	}

	// Out-of-range indexes are a no-op.
	c.UpdateQuantity(5, 1)
	c.UpdateQuantity(-1, 1)
	if c.Len() != 1 || c.Lines()[0].Qty != 1 {
		t.Errorf("out-of-range update changed the cart: %+v", c.Lines())
	}
}

func TestRemoveLinePreservesOrder(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 1)
	c.AddLine(entry("b", 30), 1)
	c.AddLine(entry("c", 40), 1)

	c.RemoveLine(1)

	var ids []string
	for _, l := range c.Lines() {
		ids = append(ids, l.Entry.ID)
	}
	if diff := cmp.Diff([]string{"a", "c"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}

	c.RemoveLine(7)
	if c.Len() != 2 {
		t.Errorf("out-of-range remove changed the cart length: %d", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 3)
	c.Clear()

	if c.Len() != 0 || c.BadgeCount() != 0 {
		t.Errorf("expected empty cart, got len=%d badge=%d", c.Len(), c.BadgeCount())
	}
}

func TestBadgeCountSumsQuantities(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 3)
	c.AddLine(entry("b", 30), 2)

	if got := c.BadgeCount(); got != 5 {
		t.Errorf("expected badge 5, got %d", got)
	}
}

func TestSubtotalRoundsToOneDecimal(t *testing.T) {
	tests := []struct {
		price float64
		qty   int
		want  float64
	}{
		{25, 2, 50},
		{12.333, 1, 12.3},
		{12.37, 1, 12.4},
		{0.04, 1, 0},
	}

	for _, tt := range tests {
		got := Subtotal(Line{Entry: entry("a", tt.price), Qty: tt.qty})
		if got != tt.want {
			t.Errorf("Subtotal(%v × %d): expected %v, got %v", tt.price, tt.qty, got, tt.want)
		}
	}
}

// The grand total accumulates unrounded products and rounds once at the end,
// so it can differ from the sum of the per-line display subtotals.
func TestGrandTotalRoundsOnce(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 12.333), 3)

	if got := Subtotal(c.Lines()[0]); got != 37.0 {
		t.Errorf("subtotal: expected 37.0, got %v", got)
	}
	if got := c.GrandTotal(); got != 37.0 {
		t.Errorf("grand total: expected 37.0, got %v", got)
	}

	c2 := New()
	c2.AddLine(entry("a", 10.04), 1)
	c2.AddLine(entry("b", 10.04), 1)
	// Per-line display would give 10.0 + 10.0; the real total is 20.08 → 20.1.
	if got := c2.GrandTotal(); got != 20.1 {
		t.Errorf("grand total: expected 20.1, got %v", got)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddLine(entry("a", 25), 1)

	lines := c.Lines()
	lines[0].Qty = 99

	if got := c.Lines()[0].Qty; got != 1 {
		t.Errorf("mutating the returned slice leaked into the cart: qty=%d", got)
	}
}

func TestQuantityLabel(t *testing.T) {
	tests := []struct {
		category string
		qty      int
		want     string
	}{
		{measure.CategoryLens, 1, "1/2 (1 unidad)"},
		{measure.CategoryLens, 2, "1 Par (2 unidades)"},
		{measure.CategoryLens, 3, "1 Par y medio (3 unidades)"},
		{measure.CategoryLens, 4, "2 Pares (4 unidades)"},
		{measure.CategoryLens, 5, "2 Pares y medio (5 unidades)"},
		{measure.CategoryReady, 1, "1 Par"},
		{measure.CategoryReady, 3, "3 Pares"},
		{measure.CategoryBlock, 1, "1 Par"},
		{measure.CategoryBlock, 2, "2 Pares"},
		{measure.CategoryFrame, 2, "2"},
		{measure.CategoryOther, 7, "7"},
	}

	for _, tt := range tests {
		got := QuantityLabel(tt.category, tt.qty)
		if got != tt.want {
			t.Errorf("QuantityLabel(%s, %d): expected %q, got %q", tt.category, tt.qty, got, tt.want)
		}
	}
}
