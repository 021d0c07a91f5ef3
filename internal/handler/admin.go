package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
)

func (c *Console) adminFlow(ctx context.Context) {
	for {
		c.printf("\n=== ADMIN DASHBOARD ===\n")
		c.printf("Admin: %s (%s)\n", c.admin.Name, c.admin.Email)
		c.printf("1. View All Orders\n")
		c.printf("2. Add New Item to Menu\n")
		c.printf("3. Recent Activity\n")
		c.printf("0. Logout\n")

		action, ok := c.promptInt("Select Action: ")
		if !ok {
			return
		}

		switch action {
		case 1:
			c.viewAllOrders(ctx)
		case 2:
			c.addMenuItem(ctx)
		case 3:
			c.recentActivity()
		case 0:
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *Console) viewAllOrders(ctx context.Context) {
	orders, err := c.orders.ListAllOrders(ctx)
	if err != nil {
		c.logger.Error("Failed to list orders", zap.Error(err))
		c.printf("Could not load the orders.\n")
		return
	}

	c.printf("\n--- ALL CUSTOMER ORDERS ---\n")
	if len(orders) == 0 {
		c.printf("No orders placed yet.\n")
	} else {
		for _, o := range orders {
			c.printf("Order #%d [%s] | Customer: %s | Total: %s\n",
				o.Number, o.StatusLabel(), o.CustomerName, c.amount(o.TotalAmount))
		}
	}
	c.printf("---------------------------\n")
}

func (c *Console) addMenuItem(ctx context.Context) {
	c.printf("\n--- ADD NEW MENU ITEM ---\n")
	name, ok := c.readLine("Enter Name (No spaces): ")
	if !ok {
		return
	}
	priceRaw, ok := c.readLine("Enter Price (e.g. 15.5): ")
	if !ok {
		return
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		c.printf("Invalid price.\n")
		return
	}

	item, err := c.menu.AddItem(ctx, name, price)
	if err != nil {
		if domain.IsValidation(err) {
			c.printf("%s\n", err.Error())
			return
		}
		c.logger.Error("Failed to add menu item", zap.String("name", name), zap.Error(err))
		c.printf("Could not add the item.\n")
		return
	}

	c.printf("Item added! (#%d %s - %s)\n", item.ID, item.Name, c.amount(item.Price))
}

func (c *Console) recentActivity() {
	entries := c.journal.Recent(10)

	c.printf("\n--- RECENT ACTIVITY ---\n")
	if len(entries) == 0 {
		c.printf("No activity yet.\n")
		return
	}
	for _, e := range entries {
		c.printf("%s  %s\n", e.Timestamp.Format("15:04:05"), e.Summary)
	}
}
