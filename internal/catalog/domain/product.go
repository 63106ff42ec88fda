package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Capability data is optional: a nil ExpiresAt
// means the product never expires, a nil WeightGrams means it needs no
// shipping. Stock is shared mutable state between carts and checkout.
type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Stock     int

	ExpiresAt   *time.Time
	WeightGrams *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) Available(qty int) bool {
	return p.Stock >= qty
}

// Expired reports whether the product is past its expiry date as of the
// given instant. Comparison is at calendar-date granularity; the expiry
// date itself is still purchasable.
func (p *Product) Expired(asOf time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return dateOf(asOf).After(dateOf(*p.ExpiresAt))
}

func (p *Product) Expirable() bool {
	return p.ExpiresAt != nil
}

// Shippable returns the per-unit weight in grams and whether the product
// is physical at all.
func (p *Product) Shippable() (decimal.Decimal, bool) {
	if p.WeightGrams == nil {
		return decimal.Decimal{}, false
	}
	return *p.WeightGrams, true
}

// ReduceStock decrements stock after a successful payment. Reducing past
// the current stock means a validation gate upstream was skipped; that is
// reported as an error, never absorbed silently.
func (p *Product) ReduceStock(qty int) error {
	if qty > p.Stock {
		return &OutOfStockError{Product: p.Name, Available: p.Stock, Requested: qty}
	}
	p.Stock -= qty
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
