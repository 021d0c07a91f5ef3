package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hungrybay/food-ordering/internal/domain"
)

func TestMenuRepositoryAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository()

	names := []string{"CheeseBurger", "Pizza", "Coke"}
	for i, name := range names {
		item, err := repo.Save(ctx, name, decimal.RequireFromString("1.00"))
		if err != nil {
			t.Fatalf("Save(%q) error = %v", name, err)
		}
		if item.ID != i+1 {
			t.Fatalf("Save(%q) ID = %d, want %d", name, item.ID, i+1)
		}
	}
}

func TestMenuRepositoryListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository()
	for _, name := range []string{"CheeseBurger", "Pizza", "Coke"} {
		if _, err := repo.Save(ctx, name, decimal.RequireFromString("1.00")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("List() returned %d items, want 3", len(items))
	}
	if items[0].Name != "CheeseBurger" || items[1].Name != "Pizza" || items[2].Name != "Coke" {
		t.Fatalf("List() order wrong: %v", items)
	}

	// The returned slice is a snapshot, not the backing storage.
	items[0].Name = "Changed"
	again, _ := repo.List(ctx)
	if again[0].Name != "CheeseBurger" {
		t.Fatalf("catalog mutated through List() result: %s", again[0].Name)
	}
}

func TestMenuRepositoryByOrdinal(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository()
	for _, name := range []string{"CheeseBurger", "Pizza"} {
		if _, err := repo.Save(ctx, name, decimal.RequireFromString("1.00")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	item, err := repo.ByOrdinal(ctx, 2)
	if err != nil {
		t.Fatalf("ByOrdinal(2) error = %v", err)
	}
	if item.Name != "Pizza" {
		t.Fatalf("ByOrdinal(2) = %q, want Pizza", item.Name)
	}

	for _, n := range []int{0, -1, 3} {
		if _, err := repo.ByOrdinal(ctx, n); !errors.Is(err, domain.ErrMenuItemNotFound) {
			t.Fatalf("ByOrdinal(%d) error = %v, want ErrMenuItemNotFound", n, err)
		}
	}
}
