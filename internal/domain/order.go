package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusPaid    OrderStatus = "PAID"
)

// Order is the frozen snapshot of a cart at checkout time. Line items and the
// total are fixed at construction; only the status moves, and only once.
type Order struct {
	Number        int
	CustomerID    int
	CustomerName  string
	LineItems     []MenuItem
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	PaymentMethod string
	CreatedAt     time.Time
	PaidAt        time.Time
}

// NewOrder builds a PENDING order from a cart snapshot. The items are copied
// so the order never shares storage with the caller's slice, and the total is
// computed here once.
func NewOrder(number int, customer *Customer, lineItems []MenuItem) *Order {
	items := make([]MenuItem, len(lineItems))
	copy(items, lineItems)

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	return &Order{
		Number:       number,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		LineItems:    items,
		TotalAmount:  total,
		Status:       OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}

// ConfirmPayment moves the order from PENDING to PAID with the settling
// method. The transition is legal exactly once; re-applying it returns
// ErrOrderAlreadyPaid and changes nothing.
func (o *Order) ConfirmPayment(method string) error {
	if o.Status != OrderStatusPending {
		return ErrOrderAlreadyPaid
	}
	o.Status = OrderStatusPaid
	o.PaymentMethod = method
	o.PaidAt = time.Now().UTC()
	return nil
}

// StatusLabel renders the status for display, carrying the method once paid.
func (o *Order) StatusLabel() string {
	if o.Status == OrderStatusPaid {
		return fmt.Sprintf("PAID (%s)", o.PaymentMethod)
	}
	return string(o.Status)
}
