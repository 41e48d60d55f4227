package finance

import (
	"errors"

	"finance-portal/internal/models"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrNegativeUnitPrice   = errors.New("unit price must not be negative")
	ErrAmountMismatch      = errors.New("amount must equal quantity times unit price")
)

// LineAmount recomputes an expense line's amount from quantity and unit
// price. It is the single source of the amount = quantity x unitPrice
// rule.
func LineAmount(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// ValidateExpense gates an expense before it is written: positive
// quantity, non-negative unit price, a consistent amount, and an APPROVED
// target event. No budget ceiling is applied; remaining may go negative.
func ValidateExpense(event models.Event, quantity int, unitPrice, amount float64) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if unitPrice < 0 {
		return ErrNegativeUnitPrice
	}
	if amount != LineAmount(quantity, unitPrice) {
		return ErrAmountMismatch
	}
	if event.Status != models.StatusApproved {
		return ErrEventNotApproved
	}
	return nil
}
