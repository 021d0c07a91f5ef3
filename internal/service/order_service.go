package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/events"
	"github.com/hungrybay/food-ordering/internal/payment"
	"github.com/hungrybay/food-ordering/internal/repository"
)

// OrderService drives the order lifecycle: cart checkout, payment, and the
// ledger of settled orders.
type OrderService struct {
	ledger  *repository.LedgerRepository
	journal *events.Journal
	logger  *zap.Logger
}

func NewOrderService(ledger *repository.LedgerRepository, journal *events.Journal, logger *zap.Logger) *OrderService {
	return &OrderService{
		ledger:  ledger,
		journal: journal,
		logger:  logger,
	}
}

// Checkout converts the customer's cart into a PENDING order. The cart hands
// over a value snapshot and is emptied in the same step; on ErrEmptyCart
// nothing changes anywhere. The order number comes from the ledger sequence.
func (s *OrderService) Checkout(ctx context.Context, customer *domain.Customer) (*domain.Order, error) {
	snapshot, err := customer.Cart.Checkout()
	if err != nil {
		return nil, err
	}

	number := s.ledger.NextOrderNumber(ctx)
	order := domain.NewOrder(number, customer, snapshot)

	s.journal.PublishOrderPlaced(order)
	s.logger.Info("Order created",
		zap.Int("order_number", order.Number),
		zap.Int("customer_id", order.CustomerID),
		zap.Int("line_items", len(order.LineItems)),
		zap.String("total_amount", order.TotalAmount.String()))

	return order, nil
}

// Pay settles a pending order with the chosen method. On success the order is
// confirmed and appended to the ledger as one step; on any failure the order
// stays PENDING and the ledger is untouched.
func (s *OrderService) Pay(ctx context.Context, order *domain.Order, method payment.Method) (*domain.Order, error) {
	proc, err := payment.ProcessorFor(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentRejected, err)
	}

	receipt, err := proc.Process(order.TotalAmount)
	if err != nil {
		s.logger.Warn("Payment failed",
			zap.Int("order_number", order.Number),
			zap.String("method", string(method)),
			zap.Error(err))
		return nil, fmt.Errorf("process payment: %w", err)
	}

	if err := order.ConfirmPayment(string(method)); err != nil {
		return nil, err
	}

	if err := s.ledger.Append(ctx, *order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	s.journal.PublishPaymentConfirmed(order, receipt)
	s.logger.Info("Order settled",
		zap.Int("order_number", order.Number),
		zap.String("method", string(method)),
		zap.String("receipt_reference", receipt.Reference),
		zap.String("total_amount", order.TotalAmount.String()))

	return order, nil
}

// ListAllOrders returns the ledger contents in chronological order.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.ledger.ListAll(ctx)
}
