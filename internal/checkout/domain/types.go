package domain

import (
	"github.com/shopspring/decimal"

	"github.com/poskit/checkout/internal/shipping"
)

// Line is one itemized entry on a receipt or quote. Amounts are kept at
// full precision; truncation happens only at presentation.
type Line struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Result is produced by a successful checkout.
type Result struct {
	OrderID      string
	Lines        []Line
	Subtotal     decimal.Decimal
	ShippingFee  decimal.Decimal
	Total        decimal.Decimal
	BalanceAfter decimal.Decimal
	Manifest     shipping.Manifest
}

// Quote is a read-only priced preview of a cart; nothing is charged and
// nothing is reserved.
type Quote struct {
	Lines       []Line
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}
