package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodCreditCard Method = "Credit Card"
	MethodCash       Method = "Cash"
)

// Receipt is the settlement record a processor returns when it accepts
// a charge.
type Receipt struct {
	Reference string
	Method    Method
	Amount    decimal.Decimal
	SettledAt time.Time
}

// Processor settles a charge for a given amount. A nil error means the
// payment went through; a declining variant returns an error wrapping
// domain.ErrPaymentRejected so callers can keep routing on that one value.
type Processor interface {
	Process(amount decimal.Decimal) (Receipt, error)
}

// CreditCardProcessor settles unconditionally; there is no gateway behind it.
type CreditCardProcessor struct{}

func (CreditCardProcessor) Process(amount decimal.Decimal) (Receipt, error) {
	return newReceipt(MethodCreditCard, amount), nil
}

// CashProcessor records the amount to be collected on delivery.
type CashProcessor struct{}

func (CashProcessor) Process(amount decimal.Decimal) (Receipt, error) {
	return newReceipt(MethodCash, amount), nil
}

func newReceipt(method Method, amount decimal.Decimal) Receipt {
	return Receipt{
		Reference: uuid.New().String(),
		Method:    method,
		Amount:    amount,
		SettledAt: time.Now().UTC(),
	}
}

// ProcessorFor dispatches over the closed set of methods.
func ProcessorFor(method Method) (Processor, error) {
	switch method {
	case MethodCreditCard:
		return CreditCardProcessor{}, nil
	case MethodCash:
		return CashProcessor{}, nil
	default:
		return nil, fmt.Errorf("unknown payment method %q", method)
	}
}
