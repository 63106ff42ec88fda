package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Customer holds a prepaid balance. The balance is only ever mutated
// through Deduct, and only by a successful checkout.
type Customer struct {
	Name    string
	Balance decimal.Decimal
}

// InsufficientBalanceError reports a charge the customer cannot cover.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, required %s", e.Available, e.Required)
}

// Deduct charges the balance, or fails without touching it.
func (c *Customer) Deduct(amount decimal.Decimal) error {
	if c.Balance.LessThan(amount) {
		return &InsufficientBalanceError{Available: c.Balance, Required: amount}
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}
