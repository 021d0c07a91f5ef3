package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hungrybay/food-ordering/internal/domain"
)

// ErrUnpaidOrder is returned when something tries to put a non-PAID order on
// the ledger, which only ever records settled orders.
var ErrUnpaidOrder = errors.New("order has not been paid")

// LedgerRepository is the append-only record of paid orders, kept in
// chronological order. It also owns the order number sequence so checkout can
// draw fresh numbers from the same place the orders end up.
type LedgerRepository struct {
	mu         sync.Mutex
	orders     []domain.Order
	nextNumber int
}

// NewLedgerRepository starts the order number sequence at numberBase.
func NewLedgerRepository(numberBase int) *LedgerRepository {
	return &LedgerRepository{nextNumber: numberBase}
}

// NextOrderNumber hands out the next number in the sequence.
func (r *LedgerRepository) NextOrderNumber(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.nextNumber
	r.nextNumber++
	return n
}

// Append records a paid order. The stored copy owns its own line item slice,
// so nothing the caller does afterwards can reach it.
func (r *LedgerRepository) Append(ctx context.Context, order domain.Order) error {
	if order.Status != domain.OrderStatusPaid {
		return fmt.Errorf("append order #%d: %w", order.Number, ErrUnpaidOrder)
	}

	items := make([]domain.MenuItem, len(order.LineItems))
	copy(items, order.LineItems)
	order.LineItems = items

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return nil
}

// ListAll returns every recorded order in insertion order.
func (r *LedgerRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Size reports how many orders the ledger holds.
func (r *LedgerRepository) Size(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}
