package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	cartdomain "github.com/poskit/checkout/internal/cart/domain"
	catalogapp "github.com/poskit/checkout/internal/catalog/app"
	catalogdomain "github.com/poskit/checkout/internal/catalog/domain"
	"github.com/poskit/checkout/internal/catalog/infra/memory"
	checkoutapp "github.com/poskit/checkout/internal/checkout/app"
	customerdomain "github.com/poskit/checkout/internal/customer/domain"
	"github.com/poskit/checkout/internal/receipt"
	"github.com/poskit/checkout/internal/shipping"
	"github.com/poskit/checkout/pkg/config"
	"github.com/poskit/checkout/pkg/logger"
	"github.com/poskit/checkout/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "pos", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	rates, err := config.LoadShippingRates(cfg.ShippingRatesFile)
	if err != nil {
		log.Error("shipping rates load failed", slog.Any("err", err))
		os.Exit(1)
	}

	catalogSvc := catalogapp.NewService(memory.NewProductRepo(), 10)
	checkoutSvc := checkoutapp.NewService(shipping.NewCalculator(shipping.Config{
		BaseFee:           rates.BaseFee,
		WeightRatePerGram: rates.WeightRatePerGram,
	}), 10)

	if err := seedCatalog(ctx, catalogSvc); err != nil {
		log.Error("catalog seed failed", slog.Any("err", err))
		os.Exit(1)
	}

	products, err := catalogSvc.ResolveBatch(ctx, "Cheese", "Biscuits", "TV", "Mobile Scratch Card", "Old Cheese")
	if err != nil {
		log.Error("catalog resolve failed", slog.Any("err", err))
		os.Exit(1)
	}
	cheese, biscuits, tv, scratchCard, oldCheese := products[0], products[1], products[2], products[3], products[4]

	customer := &customerdomain.Customer{Name: "John Doe", Balance: dec("1000")}
	cart := cartdomain.New()

	// Scenario 1: successful mixed checkout with shippable and digital goods.
	mustAdd(log, cart, cheese, 2)
	mustAdd(log, cart, biscuits, 1)
	mustAdd(log, cart, scratchCard, 1)

	if q, err := checkoutSvc.Quote(ctx, cart); err == nil {
		log.Info("quote", slog.String("subtotal", q.Subtotal.String()),
			slog.String("shipping", q.ShippingFee.String()), slog.String("total", q.Total.String()))
	}

	res, err := checkoutSvc.Checkout(ctx, customer, cart)
	if err != nil {
		log.Error("checkout failed", slog.Any("err", err))
		os.Exit(1)
	}
	fmt.Print(receipt.Render(res))
	fmt.Print(receipt.RenderShipment(res.Manifest))
	log.Info("order placed", slog.String("order_id", res.OrderID),
		slog.String("charged", res.Total.String()))

	// Scenario 2: checkout with an empty cart.
	if _, err := checkoutSvc.Checkout(ctx, customer, cart); errors.Is(err, checkoutapp.ErrEmptyCart) {
		log.Warn("checkout rejected", slog.Any("err", err))
	}

	// Scenario 3: expired product. The caller decides to clear the cart.
	mustAdd(log, cart, oldCheese, 1)
	if _, err := checkoutSvc.Checkout(ctx, customer, cart); err != nil {
		var exp *catalogdomain.ExpiredProductError
		if errors.As(err, &exp) {
			log.Warn("checkout rejected", slog.String("product", exp.Product),
				slog.Time("expired_at", exp.ExpiredAt))
		}
		cart.Clear()
	}

	// Scenario 4: balance too small for the TV plus its shipping.
	broke := &customerdomain.Customer{Name: "Jane Roe", Balance: dec("50")}
	mustAdd(log, cart, tv, 1)
	if _, err := checkoutSvc.Checkout(ctx, broke, cart); err != nil {
		var ib *customerdomain.InsufficientBalanceError
		if errors.As(err, &ib) {
			log.Warn("checkout rejected", slog.String("available", ib.Available.String()),
				slog.String("required", ib.Required.String()))
		}
		cart.Clear()
	}

	log.Info("bye")
}

func seedCatalog(ctx context.Context, svc *catalogapp.Service) error {
	now := time.Now()
	seeds := []catalogapp.NewProductInput{
		{Name: "Cheese", UnitPrice: dec("100"), Stock: 10,
			ExpiresAt: ptrTime(now.AddDate(0, 0, 7)), WeightGrams: ptrDec("200")},
		{Name: "Biscuits", UnitPrice: dec("150"), Stock: 5,
			ExpiresAt: ptrTime(now.AddDate(0, 0, 14)), WeightGrams: ptrDec("350")},
		{Name: "TV", UnitPrice: dec("500"), Stock: 3, WeightGrams: ptrDec("5000")},
		{Name: "Mobile Scratch Card", UnitPrice: dec("25"), Stock: 100},
		{Name: "Old Cheese", UnitPrice: dec("80"), Stock: 4,
			ExpiresAt: ptrTime(now.AddDate(0, 0, -1)), WeightGrams: ptrDec("200")},
	}

	for _, in := range seeds {
		if _, err := svc.CreateProduct(ctx, in); err != nil {
			return fmt.Errorf("seed %s: %w", in.Name, err)
		}
	}
	return nil
}

func mustAdd(log *slog.Logger, cart *cartdomain.Cart, p *catalogdomain.Product, qty int) {
	if err := cart.AddLine(p, qty); err != nil {
		log.Error("add to cart failed", slog.String("product", p.Name), slog.Any("err", err))
		os.Exit(1)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrTime(t time.Time) *time.Time { return &t }

func ptrDec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
