package app

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	cartdomain "github.com/poskit/checkout/internal/cart/domain"
	catalogdomain "github.com/poskit/checkout/internal/catalog/domain"
	customerdomain "github.com/poskit/checkout/internal/customer/domain"
	"github.com/poskit/checkout/internal/shipping"
)

// Property: whatever the cart and balance, a failing checkout mutates
// nothing, and a succeeding one deducts exactly subtotal plus fee and
// decrements each product's stock by its line quantity.
func TestCheckoutAtomicityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	svc := NewService(shipping.NewCalculator(shipping.DefaultConfig()), 0)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	}

	properties.Property("failure mutates nothing, success charges exactly the total", prop.ForAll(
		func(prices []int, stocks []int, qtys []int, weights []int, balance int) bool {
			n := len(prices)
			if len(stocks) < n {
				n = len(stocks)
			}
			if len(qtys) < n {
				n = len(qtys)
			}
			if len(weights) < n {
				n = len(weights)
			}

			products := make([]*catalogdomain.Product, 0, n)
			cart := cartdomain.New()
			for i := 0; i < n; i++ {
				p := &catalogdomain.Product{
					Name:      string(rune('A' + i)),
					UnitPrice: decimal.NewFromInt(int64(prices[i])),
					Stock:     stocks[i],
				}
				if weights[i] > 0 {
					w := decimal.NewFromInt(int64(weights[i]))
					p.WeightGrams = &w
				}
				products = append(products, p)
				// Insertion may legitimately fail on stock; skip the line.
				_ = cart.AddLine(p, qtys[i])
			}

			customer := &customerdomain.Customer{Balance: decimal.NewFromInt(int64(balance))}

			beforeBalance := customer.Balance
			beforeStocks := make([]int, len(products))
			for i, p := range products {
				beforeStocks[i] = p.Stock
			}
			beforeLines := cart.Lines()

			res, err := svc.Checkout(context.Background(), customer, cart)
			if err != nil {
				if !customer.Balance.Equal(beforeBalance) {
					return false
				}
				for i, p := range products {
					if p.Stock != beforeStocks[i] {
						return false
					}
				}
				after := cart.Lines()
				if len(after) != len(beforeLines) {
					return false
				}
				for i := range after {
					if after[i] != beforeLines[i] {
						return false
					}
				}
				return true
			}

			if !customer.Balance.Equal(beforeBalance.Sub(res.Total)) {
				return false
			}
			if !res.Total.Equal(res.Subtotal.Add(res.ShippingFee)) {
				return false
			}
			for _, line := range beforeLines {
				idx := -1
				for j, p := range products {
					if p == line.Product {
						idx = j
						break
					}
				}
				if idx < 0 || line.Product.Stock != beforeStocks[idx]-line.Quantity {
					return false
				}
			}
			return cart.IsEmpty()
		},
		gen.SliceOfN(4, gen.IntRange(0, 500)),
		gen.SliceOfN(4, gen.IntRange(0, 10)),
		gen.SliceOfN(4, gen.IntRange(1, 12)),
		gen.SliceOfN(4, gen.IntRange(0, 5000)),
		gen.IntRange(0, 2000),
	))

	properties.TestingRun(t)
}
