package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func ptrTime(t time.Time) *time.Time { return &t }

func ptrDec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestExpired(t *testing.T) {
	expiry := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("non-expirable never expires", func(t *testing.T) {
		p := Product{Name: "TV", UnitPrice: decimal.NewFromInt(500), Stock: 3}
		if p.Expired(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatal("non-expirable product reported expired")
		}
	})

	t.Run("expiry date itself is still valid", func(t *testing.T) {
		p := Product{Name: "Cheese", ExpiresAt: ptrTime(expiry)}
		asOf := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
		if p.Expired(asOf) {
			t.Fatal("product expired on its own expiry date")
		}
	})

	t.Run("day after expiry is expired", func(t *testing.T) {
		p := Product{Name: "Cheese", ExpiresAt: ptrTime(expiry)}
		asOf := time.Date(2026, time.March, 11, 0, 0, 1, 0, time.UTC)
		if !p.Expired(asOf) {
			t.Fatal("product not expired the day after its expiry date")
		}
	})
}

func TestShippable(t *testing.T) {
	t.Run("physical product exposes weight", func(t *testing.T) {
		p := Product{Name: "TV", WeightGrams: ptrDec("5000")}
		w, ok := p.Shippable()
		if !ok || !w.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("got (%s,%v)", w, ok)
		}
	})

	t.Run("digital product is not shippable", func(t *testing.T) {
		p := Product{Name: "Mobile Scratch Card"}
		if _, ok := p.Shippable(); ok {
			t.Fatal("weightless product reported shippable")
		}
	})
}

func TestReduceStock(t *testing.T) {
	t.Run("decrements within stock", func(t *testing.T) {
		p := Product{Name: "Cheese", Stock: 10}
		if err := p.ReduceStock(4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Stock != 6 {
			t.Fatalf("stock = %d, want 6", p.Stock)
		}
	})

	t.Run("beyond stock fails and mutates nothing", func(t *testing.T) {
		p := Product{Name: "Cheese", Stock: 3}
		err := p.ReduceStock(4)
		var oos *OutOfStockError
		if !errors.As(err, &oos) {
			t.Fatalf("expected OutOfStockError, got %v", err)
		}
		if oos.Available != 3 || oos.Requested != 4 {
			t.Fatalf("error payload = %+v", oos)
		}
		if p.Stock != 3 {
			t.Fatalf("stock mutated to %d on failed reduction", p.Stock)
		}
	})
}
