package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/events"
	"github.com/hungrybay/food-ordering/internal/payment"
	"github.com/hungrybay/food-ordering/internal/repository"
)

type fixture struct {
	menu     *MenuService
	orders   *OrderService
	ledger   *repository.LedgerRepository
	journal  *events.Journal
	customer *domain.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	menuRepo := repository.NewMenuRepository()
	ledger := repository.NewLedgerRepository(1001)
	journal := events.NewJournal(logger)

	f := &fixture{
		menu:     NewMenuService(menuRepo, logger),
		orders:   NewOrderService(ledger, journal, logger),
		ledger:   ledger,
		journal:  journal,
		customer: domain.NewCustomer(101, "Student", "student@arel.edu.tr", "+905551234567"),
	}

	seeds := []struct {
		name  string
		price string
	}{
		{"CheeseBurger", "8.99"},
		{"Pizza", "12.50"},
		{"Coke", "2.00"},
	}
	for _, s := range seeds {
		if _, err := f.menu.AddItem(ctx, s.name, decimal.RequireFromString(s.price)); err != nil {
			t.Fatalf("seed AddItem(%q) error = %v", s.name, err)
		}
	}
	return f
}

func (f *fixture) addByOrdinal(t *testing.T, n int) {
	t.Helper()
	item, err := f.menu.ItemByOrdinal(context.Background(), n)
	if err != nil {
		t.Fatalf("ItemByOrdinal(%d) error = %v", n, err)
	}
	f.customer.Cart.Add(item)
}

func TestCheckoutIsAtomic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addByOrdinal(t, 1)
	f.addByOrdinal(t, 2)

	order, err := f.orders.Checkout(ctx, f.customer)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	if order.Number != 1001 {
		t.Fatalf("order number = %d, want 1001", order.Number)
	}
	if order.Status != domain.OrderStatusPending {
		t.Fatalf("order status = %s, want PENDING", order.Status)
	}
	want := decimal.RequireFromString("21.49")
	if !order.TotalAmount.Equal(want) {
		t.Fatalf("order total = %s, want %s", order.TotalAmount, want)
	}
	if !f.customer.Cart.IsEmpty() {
		t.Fatal("cart should be empty after checkout")
	}

	// Later cart activity must never change the order.
	f.addByOrdinal(t, 3)
	if !order.TotalAmount.Equal(want) {
		t.Fatalf("order total changed after cart mutation: %s", order.TotalAmount)
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("order has %d line items after cart mutation, want 2", len(order.LineItems))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.orders.Checkout(ctx, f.customer)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("Checkout() error = %v, want ErrEmptyCart", err)
	}
	if !f.customer.Cart.IsEmpty() {
		t.Fatal("cart should remain empty")
	}
	if f.ledger.Size(ctx) != 0 {
		t.Fatalf("ledger size = %d after failed checkout, want 0", f.ledger.Size(ctx))
	}
}

func TestPayAppendsToLedger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addByOrdinal(t, 1)
	f.addByOrdinal(t, 2)

	order, err := f.orders.Checkout(ctx, f.customer)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if f.ledger.Size(ctx) != 0 {
		t.Fatal("pending order must not be on the ledger")
	}

	paid, err := f.orders.Pay(ctx, order, payment.MethodCash)
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if paid.StatusLabel() != "PAID (Cash)" {
		t.Fatalf("status label = %q, want PAID (Cash)", paid.StatusLabel())
	}

	orders, err := f.orders.ListAllOrders(ctx)
	if err != nil {
		t.Fatalf("ListAllOrders() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("ledger holds %d orders, want 1", len(orders))
	}
	if !orders[0].TotalAmount.Equal(decimal.RequireFromString("21.49")) {
		t.Fatalf("ledger order total = %s, want 21.49", orders[0].TotalAmount)
	}

	// One placed event and one payment event.
	if got := len(f.journal.Recent(10)); got != 2 {
		t.Fatalf("journal holds %d entries, want 2", got)
	}
}

func TestPayTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addByOrdinal(t, 3)

	order, err := f.orders.Checkout(ctx, f.customer)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if _, err := f.orders.Pay(ctx, order, payment.MethodCash); err != nil {
		t.Fatalf("first Pay() error = %v", err)
	}

	_, err = f.orders.Pay(ctx, order, payment.MethodCreditCard)
	if !errors.Is(err, domain.ErrOrderAlreadyPaid) {
		t.Fatalf("second Pay() error = %v, want ErrOrderAlreadyPaid", err)
	}
	if f.ledger.Size(ctx) != 1 {
		t.Fatalf("ledger size = %d after double pay, want 1", f.ledger.Size(ctx))
	}
}

func TestPayUnknownMethodIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addByOrdinal(t, 3)

	order, err := f.orders.Checkout(ctx, f.customer)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	_, err = f.orders.Pay(ctx, order, payment.Method("Barter"))
	if !errors.Is(err, domain.ErrPaymentRejected) {
		t.Fatalf("Pay() error = %v, want ErrPaymentRejected", err)
	}
	if order.Status != domain.OrderStatusPending {
		t.Fatalf("order status = %s after rejected payment, want PENDING", order.Status)
	}
	if f.ledger.Size(ctx) != 0 {
		t.Fatalf("ledger size = %d after rejected payment, want 0", f.ledger.Size(ctx))
	}
}

func TestOrderNumbersAreSequential(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i, want := range []int{1001, 1002} {
		f.addByOrdinal(t, i+1)
		order, err := f.orders.Checkout(ctx, f.customer)
		if err != nil {
			t.Fatalf("Checkout() error = %v", err)
		}
		if order.Number != want {
			t.Fatalf("order number = %d, want %d", order.Number, want)
		}
		if _, err := f.orders.Pay(ctx, order, payment.MethodCreditCard); err != nil {
			t.Fatalf("Pay() error = %v", err)
		}
	}

	orders, _ := f.orders.ListAllOrders(ctx)
	if len(orders) != 2 || orders[0].Number != 1001 || orders[1].Number != 1002 {
		t.Fatalf("unexpected ledger contents: %+v", orders)
	}
}
