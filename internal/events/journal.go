package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/payment"
)

// Entry is the journal's stored form of an event, flattened for display.
type Entry struct {
	EventID   string
	Kind      string
	Summary   string
	Timestamp time.Time
}

// Journal records order lifecycle events in process memory. In a distributed
// deployment this seam is where a broker producer would sit; here the events
// stay local and feed the admin activity view.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	logger  *zap.Logger
}

func NewJournal(logger *zap.Logger) *Journal {
	return &Journal{logger: logger}
}

// PublishOrderPlaced records that a checkout produced a new pending order.
func (j *Journal) PublishOrderPlaced(order *domain.Order) OrderPlacedEvent {
	evt := OrderPlacedEvent{
		EventID:     uuid.New().String(),
		OrderNumber: order.Number,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.LineItems),
		Timestamp:   time.Now().UTC(),
	}

	j.record(Entry{
		EventID:   evt.EventID,
		Kind:      "order_placed",
		Summary:   fmt.Sprintf("Order #%d placed by %s (%d items, %s)", order.Number, order.CustomerName, evt.ItemCount, evt.TotalAmount.StringFixed(2)),
		Timestamp: evt.Timestamp,
	})

	j.logger.Info("Order placed",
		zap.String("event_id", evt.EventID),
		zap.Int("order_number", evt.OrderNumber),
		zap.String("total_amount", evt.TotalAmount.String()))

	return evt
}

// PublishPaymentConfirmed records a settled payment and its receipt.
func (j *Journal) PublishPaymentConfirmed(order *domain.Order, receipt payment.Receipt) PaymentConfirmedEvent {
	evt := PaymentConfirmedEvent{
		EventID:     uuid.New().String(),
		OrderNumber: order.Number,
		Method:      string(receipt.Method),
		Amount:      receipt.Amount,
		Reference:   receipt.Reference,
		Timestamp:   time.Now().UTC(),
	}

	j.record(Entry{
		EventID:   evt.EventID,
		Kind:      "payment_confirmed",
		Summary:   fmt.Sprintf("Order #%d paid via %s (%s)", order.Number, evt.Method, evt.Amount.StringFixed(2)),
		Timestamp: evt.Timestamp,
	})

	j.logger.Info("Payment confirmed",
		zap.String("event_id", evt.EventID),
		zap.Int("order_number", evt.OrderNumber),
		zap.String("method", evt.Method),
		zap.String("reference", evt.Reference))

	return evt
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	if n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(j.entries) - 1; i >= len(j.entries)-n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

func (j *Journal) record(entry Entry) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}
