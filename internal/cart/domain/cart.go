package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	catalog "github.com/poskit/checkout/internal/catalog/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// Line pairs a product reference with a requested quantity. The product is
// shared catalog state, not a copy.
type Line struct {
	Product  *catalog.Product
	Quantity int
}

// Cart is an ordered collection of lines, unique by product name. Stock is
// checked at insertion time but never reserved; checkout re-validates.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddLine appends a line, or merges with an existing line for the same
// product name. The merged quantity is re-validated against current stock;
// on failure the existing line is left untouched.
func (c *Cart) AddLine(p *catalog.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if !p.Available(qty) {
		return &catalog.OutOfStockError{Product: p.Name, Available: p.Stock, Requested: qty}
	}

	for i, line := range c.lines {
		if line.Product.Name != p.Name {
			continue
		}
		combined := line.Quantity + qty
		if !p.Available(combined) {
			return &catalog.OutOfStockError{Product: p.Name, Available: p.Stock, Requested: combined}
		}
		c.lines[i].Quantity = combined
		return nil
	}

	c.lines = append(c.lines, Line{Product: p, Quantity: qty})
	return nil
}

// Lines returns a snapshot; mutating the returned slice does not affect
// the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal is the full-precision sum of quantity times unit price over all
// lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Product.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
