package domain

import (
	"fmt"
	"time"
)

// OutOfStockError reports a requested quantity that exceeds current stock,
// either at cart insertion or at a checkout gate.
type OutOfStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.Product, e.Available, e.Requested)
}

// ExpiredProductError reports a cart line whose product is past its expiry
// date at checkout time.
type ExpiredProductError struct {
	Product   string
	ExpiredAt time.Time
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("product %s expired on %s", e.Product, e.ExpiredAt.Format("2006-01-02"))
}
