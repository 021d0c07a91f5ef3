package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when a checkout is attempted with nothing selected.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMenuItemNotFound is returned when an ordinal falls outside the current menu.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrOrderAlreadyPaid is returned when a payment confirmation is re-applied
	// to an order that already left the PENDING state.
	ErrOrderAlreadyPaid = errors.New("order is already paid")

	// ErrPaymentRejected is reserved for payment variants that can decline.
	// None of the current processors produce it.
	ErrPaymentRejected = errors.New("payment rejected")
)

// ValidationError reports an input that was rejected before touching any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

// IsValidation helps callers distinguish rejected input from other failures.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
