package cart

import (
	"math"

	"github.com/ceer-dev/optimarketsrl/internal/catalog"
)

// Line is one cart position: a resolved catalog entry and a raw unit count.
type Line struct {
	Entry catalog.Entry
	Qty   int
}

// Cart is the ordered collection of lines for one quotation session. At most
// one line exists per entry id; adding the same entry again increments the
// existing line. Quantities never drop below 1 — removing a line is its own
// explicit operation.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddLine appends a line for entry, or increments the line that already holds
// the same entry id. Quantities below 1 are clamped to 1, never rejected.
func (c *Cart) AddLine(entry catalog.Entry, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].Entry.ID == entry.ID {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, Line{Entry: entry, Qty: qty})
}

// UpdateQuantity applies delta to the line at index, clamping the result to a
// minimum of 1. Out-of-range indexes are ignored.
func (c *Cart) UpdateQuantity(index, delta int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines[index].Qty += delta
	if c.lines[index].Qty < 1 {
		c.lines[index].Qty = 1
	}
}

// RemoveLine deletes the line at index, preserving the order of the rest.
func (c *Cart) RemoveLine(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Clear empties the cart, e.g. after a successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// BadgeCount is the floating-cart badge figure: the sum of all line
// quantities, not the number of distinct lines.
func (c *Cart) BadgeCount() int {
	total := 0
	for _, l := range c.lines {
		total += l.Qty
	}
	return total
}

// Subtotal is the display subtotal of one line: invoiced price × quantity,
// rounded to one decimal place. Stored state stays unrounded; only the
// presented figure rounds.
func Subtotal(l Line) float64 {
	return roundDisplay(l.Entry.PriceInvoiced * float64(l.Qty))
}

// GrandTotal accumulates the unrounded per-line products and rounds once at
// the end, so rounding error never compounds across lines.
func (c *Cart) GrandTotal() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Entry.PriceInvoiced * float64(l.Qty)
	}
	return roundDisplay(total)
}

func roundDisplay(v float64) float64 {
	return math.Round(v*10) / 10
}
