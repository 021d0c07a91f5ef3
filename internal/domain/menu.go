package domain

import "github.com/shopspring/decimal"

// MenuItem is a single dish on the catalog. Items are immutable once created
// and live for the process lifetime.
type MenuItem struct {
	ID    int
	Name  string
	Price decimal.Decimal
}
