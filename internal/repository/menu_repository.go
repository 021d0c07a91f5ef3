package repository

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hungrybay/food-ordering/internal/domain"
)

// MenuRepository holds the catalog in memory. It owns the item ID sequence,
// so every stored item gets the next monotonic ID regardless of the caller.
type MenuRepository struct {
	mu     sync.Mutex
	items  []domain.MenuItem
	nextID int
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{nextID: 1}
}

// Save appends a new item with the next sequential ID. Duplicate names are
// permitted; the ID is the only identity.
func (r *MenuRepository) Save(ctx context.Context, name string, price decimal.Decimal) (domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := domain.MenuItem{ID: r.nextID, Name: name, Price: price}
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// List returns a snapshot of the catalog in insertion order.
func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// ByOrdinal resolves the 1-based position an item holds in the displayed
// listing, which matches insertion order.
func (r *MenuRepository) ByOrdinal(ctx context.Context, n int) (domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n < 1 || n > len(r.items) {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	return r.items[n-1], nil
}

// Size reports how many items the catalog currently carries.
func (r *MenuRepository) Size(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
