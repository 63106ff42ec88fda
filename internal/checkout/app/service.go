package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	cartdomain "github.com/poskit/checkout/internal/cart/domain"
	catalogdomain "github.com/poskit/checkout/internal/catalog/domain"
	"github.com/poskit/checkout/internal/checkout/domain"
	customerdomain "github.com/poskit/checkout/internal/customer/domain"
	"github.com/poskit/checkout/internal/shipping"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service runs the checkout pipeline: validate, price, charge, decrement
// stock, build the manifest, clear the cart. Any failure before the charge
// leaves customer, products and cart untouched; the cart is never cleared
// on failure, that is the caller's call.
type Service struct {
	shipping *shipping.Calculator

	// mu linearizes validate-then-mutate across checkouts that share
	// products, so two concurrent checkouts cannot jointly oversell.
	mu  sync.Mutex
	now func() time.Time

	maxConcurrent int
}

func NewService(calc *shipping.Calculator, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		shipping:      calc,
		now:           time.Now,
		maxConcurrent: maxConcurrent,
	}
}

func (s *Service) Checkout(ctx context.Context, customer *customerdomain.Customer, cart *cartdomain.Cart) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart.IsEmpty() {
		return domain.Result{}, ErrEmptyCart
	}

	lines := cart.Lines()
	asOf := s.now()

	// Expiry strictly before stock, per line, in cart order.
	for _, line := range lines {
		if line.Product.Expired(asOf) {
			return domain.Result{}, &catalogdomain.ExpiredProductError{
				Product:   line.Product.Name,
				ExpiredAt: *line.Product.ExpiresAt,
			}
		}
		if !line.Product.Available(line.Quantity) {
			return domain.Result{}, &catalogdomain.OutOfStockError{
				Product:   line.Product.Name,
				Available: line.Product.Stock,
				Requested: line.Quantity,
			}
		}
	}

	subtotal := cart.Subtotal()
	units := shippableUnits(lines)
	fee := s.shipping.Fee(units)
	total := subtotal.Add(fee)

	// Single point of financial mutation.
	if err := customer.Deduct(total); err != nil {
		return domain.Result{}, err
	}

	for _, line := range lines {
		if err := line.Product.ReduceStock(line.Quantity); err != nil {
			// Unreachable after the gates above within one synchronous
			// call; reaching it means inventory state is broken.
			return domain.Result{}, fmt.Errorf("fulfillment after payment for %s: %w", line.Product.Name, err)
		}
	}

	res := domain.Result{
		OrderID:      uuid.NewString(),
		Lines:        itemize(lines),
		Subtotal:     subtotal,
		ShippingFee:  fee,
		Total:        total,
		BalanceAfter: customer.Balance,
		Manifest:     s.shipping.BuildManifest(units),
	}

	cart.Clear()
	return res, nil
}

// Quote prices the cart without charging or reserving anything. Lines are
// priced concurrently with a bounded group.
func (s *Service) Quote(ctx context.Context, cart *cartdomain.Cart) (domain.Quote, error) {
	if cart.IsEmpty() {
		return domain.Quote{}, ErrEmptyCart
	}

	cartLines := cart.Lines()
	lines := make([]domain.Line, len(cartLines))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)

	for idx := range cartLines {
		idx := idx
		g.Go(func() error {
			ln := cartLines[idx]
			if ln.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", ln.Quantity)
			}

			qty := decimal.NewFromInt(int64(ln.Quantity))
			lines[idx] = domain.Line{
				ProductName: ln.Product.Name,
				Quantity:    ln.Quantity,
				UnitPrice:   ln.Product.UnitPrice,
				LineTotal:   ln.Product.UnitPrice.Mul(qty),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	fee := s.shipping.Fee(shippableUnits(cartLines))

	return domain.Quote{
		Lines:       lines,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}, nil
}

// shippableUnits expands cart lines into one entry per physical unit; a
// quantity-3 line contributes 3 equal-weight units. Non-shippable products
// contribute nothing.
func shippableUnits(lines []cartdomain.Line) []shipping.Unit {
	var units []shipping.Unit
	for _, line := range lines {
		weight, ok := line.Product.Shippable()
		if !ok {
			continue
		}
		for i := 0; i < line.Quantity; i++ {
			units = append(units, shipping.Unit{
				ProductName: line.Product.Name,
				WeightGrams: weight,
			})
		}
	}
	return units
}

func itemize(lines []cartdomain.Line) []domain.Line {
	out := make([]domain.Line, 0, len(lines))
	for _, ln := range lines {
		qty := decimal.NewFromInt(int64(ln.Quantity))
		out = append(out, domain.Line{
			ProductName: ln.Product.Name,
			Quantity:    ln.Quantity,
			UnitPrice:   ln.Product.UnitPrice,
			LineTotal:   ln.Product.UnitPrice.Mul(qty),
		})
	}
	return out
}
