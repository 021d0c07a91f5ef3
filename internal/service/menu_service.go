package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/repository"
)

// MenuService applies the catalog rules in front of the menu repository.
type MenuService struct {
	menu   *repository.MenuRepository
	logger *zap.Logger
}

func NewMenuService(menu *repository.MenuRepository, logger *zap.Logger) *MenuService {
	return &MenuService{
		menu:   menu,
		logger: logger,
	}
}

// AddItem validates the input and appends a new item to the catalog. A blank
// name or negative price is rejected before any state changes; duplicate
// names are allowed.
func (s *MenuService) AddItem(ctx context.Context, name string, price decimal.Decimal) (domain.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.MenuItem{}, domain.NewValidationError("name", "must not be blank")
	}
	if price.IsNegative() {
		return domain.MenuItem{}, domain.NewValidationError("price", "must not be negative")
	}

	item, err := s.menu.Save(ctx, name, price)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("save menu item: %w", err)
	}

	s.logger.Info("Menu item added",
		zap.Int("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("price", item.Price.String()))

	return item, nil
}

// ListMenu returns the catalog in insertion order.
func (s *MenuService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx)
}

// ItemByOrdinal resolves the 1-based menu position used for console input.
func (s *MenuService) ItemByOrdinal(ctx context.Context, n int) (domain.MenuItem, error) {
	return s.menu.ByOrdinal(ctx, n)
}
