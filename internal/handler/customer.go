package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/payment"
)

func (c *Console) customerFlow(ctx context.Context) {
	for {
		c.printf("\n=== CUSTOMER DASHBOARD ===\n")
		c.printf("Welcome, %s\n", c.customer.Name)
		c.printf("Email: %s\n", c.customer.Email)
		c.printf("Phone: %s\n", c.customer.Phone)
		c.printf("\n1. View Menu & Order\n")
		c.printf("2. View Cart\n")
		c.printf("3. Checkout & Pay\n")
		c.printf("4. Update Profile\n")
		c.printf("0. Logout\n")

		action, ok := c.promptInt("Action: ")
		if !ok {
			return
		}

		switch action {
		case 1:
			c.viewMenuAndOrder(ctx)
		case 2:
			c.viewCart()
		case 3:
			c.checkoutAndPay(ctx)
		case 4:
			c.updateProfile()
		case 0:
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *Console) viewMenuAndOrder(ctx context.Context) {
	items, err := c.menu.ListMenu(ctx)
	if err != nil {
		c.logger.Error("Failed to list menu", zap.Error(err))
		c.printf("Could not load the menu.\n")
		return
	}

	c.printf("\n--- MENU ---\n")
	for i, item := range items {
		c.printf("%d. %s - %s\n", i+1, item.Name, c.amount(item.Price))
	}

	ordinal, ok := c.promptInt("Enter ID of item to add (0 to cancel): ")
	if !ok || ordinal == 0 {
		return
	}

	item, err := c.menu.ItemByOrdinal(ctx, ordinal)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			c.printf("No such item on the menu.\n")
			return
		}
		c.logger.Error("Menu lookup failed", zap.Int("ordinal", ordinal), zap.Error(err))
		c.printf("Could not look up the item.\n")
		return
	}

	c.customer.Cart.Add(item)
	c.printf("[OK] %s added to cart.\n", item.Name)
}

func (c *Console) viewCart() {
	c.printf("\n--- YOUR CART ---\n")
	items := c.customer.Cart.Items()
	if len(items) == 0 {
		c.printf("Cart is empty.\n")
		return
	}
	for _, item := range items {
		c.printf("- %s: %s\n", item.Name, c.amount(item.Price))
	}
	c.printf("-------------------------\n")
	c.printf("Total: %s\n", c.amount(c.customer.Cart.Total()))
}

func (c *Console) checkoutAndPay(ctx context.Context) {
	order, err := c.orders.Checkout(ctx, c.customer)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.printf("Cart is empty!\n")
			return
		}
		c.logger.Error("Checkout failed", zap.Error(err))
		c.printf("Checkout failed, please try again.\n")
		return
	}

	c.printf("Total Amount: %s\n", c.amount(order.TotalAmount))
	c.printf("Select Payment Method:\n")
	c.printf("1. Credit Card\n")
	c.printf("2. Cash on Delivery\n")

	choice, ok := c.promptInt("Choice: ")
	if !ok {
		return
	}

	var method payment.Method
	switch choice {
	case 1:
		method = payment.MethodCreditCard
	case 2:
		method = payment.MethodCash
	default:
		c.printf("Invalid payment choice. Order Cancelled.\n")
		return
	}

	paid, err := c.orders.Pay(ctx, order, method)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentRejected) {
			c.printf("Payment was rejected. The order was not placed.\n")
			return
		}
		c.logger.Error("Payment failed", zap.Int("order_number", order.Number), zap.Error(err))
		c.printf("Payment failed, please try again.\n")
		return
	}

	c.printf("[SUCCESS] Order #%d confirmed for %s!\n", paid.Number, c.customer.Name)
}

func (c *Console) updateProfile() {
	c.printf("\n--- UPDATE PROFILE ---\n")
	email, ok := c.readLine("Enter New Email: ")
	if !ok {
		return
	}
	phone, ok := c.readLine("Enter New Phone (No spaces): ")
	if !ok {
		return
	}

	if err := c.customer.UpdateContact(email, phone); err != nil {
		c.printf("%s\n", err.Error())
		return
	}
	c.printf("Profile Updated Successfully!\n")
}
