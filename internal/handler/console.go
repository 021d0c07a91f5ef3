package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/events"
	"github.com/hungrybay/food-ordering/internal/service"
)

// Console is the line-based front end. It owns all prompting and rendering;
// every state change goes through the services, and every error the services
// return is mapped to a message here rather than escaping.
type Console struct {
	menu    *service.MenuService
	orders  *service.OrderService
	journal *events.Journal
	logger  *zap.Logger

	customer *domain.Customer
	admin    *domain.Admin
	currency string

	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(
	menu *service.MenuService,
	orders *service.OrderService,
	journal *events.Journal,
	customer *domain.Customer,
	admin *domain.Admin,
	currency string,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Console {
	return &Console{
		menu:     menu,
		orders:   orders,
		journal:  journal,
		logger:   logger,
		customer: customer,
		admin:    admin,
		currency: currency,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the top-level menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printf("\n=================================\n")
		c.printf("   ONLINE FOOD ORDERING SYSTEM   \n")
		c.printf("=================================\n")
		c.printf("1. Login as Customer\n")
		c.printf("2. Login as Admin\n")
		c.printf("0. Exit Application\n")

		choice, ok := c.promptInt("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case 0:
			c.printf("System closed.\n")
			return nil
		case 1:
			c.customerFlow(ctx)
		case 2:
			c.adminFlow(ctx)
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) amount(d decimal.Decimal) string {
	return c.currency + d.StringFixed(2)
}

// readLine prompts and returns the next trimmed input line. ok is false once
// input is exhausted, which ends the session like an explicit exit.
func (c *Console) readLine(prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptInt reads a numeric choice. Anything unparsable comes back as -1 so
// the caller's default branch re-prompts, matching the recover-locally policy.
func (c *Console) promptInt(prompt string) (int, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n, true
}
