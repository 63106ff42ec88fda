// Package receipt renders checkout results and shipment manifests for a
// console or log. All truncation here is presentation only; the underlying
// amounts stay full precision.
package receipt

import (
	"fmt"
	"strings"

	"github.com/poskit/checkout/internal/checkout/domain"
	"github.com/poskit/checkout/internal/shipping"
)

// Render produces the checkout receipt. Line totals and the summary rows
// are truncated to whole currency units; the remaining balance is printed
// at full precision.
func Render(res domain.Result) string {
	var b strings.Builder

	b.WriteString("** Checkout receipt **\n")
	for _, line := range res.Lines {
		fmt.Fprintf(&b, "%dx %s %d\n", line.Quantity, line.ProductName, line.LineTotal.IntPart())
	}
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Subtotal %d\n", res.Subtotal.IntPart())
	fmt.Fprintf(&b, "Shipping %d\n", res.ShippingFee.IntPart())
	fmt.Fprintf(&b, "Amount %d\n", res.Total.IntPart())
	fmt.Fprintf(&b, "Customer balance after payment: $%s\n", res.BalanceAfter)

	return b.String()
}

// RenderShipment produces the shipment notice; an empty manifest renders
// to the empty string.
func RenderShipment(m shipping.Manifest) string {
	if m.IsEmpty() {
		return ""
	}

	var b strings.Builder

	b.WriteString("** Shipment notice **\n")
	for _, e := range m.Entries {
		fmt.Fprintf(&b, "1x %s %sg\n", e.ProductName, e.WeightGrams)
	}
	fmt.Fprintf(&b, "Total package weight %skg\n", m.TotalWeightKg)

	return b.String()
}
