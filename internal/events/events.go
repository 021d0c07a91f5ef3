package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderPlacedEvent struct {
	EventID     string          `json:"event_id"`
	OrderNumber int             `json:"order_number"`
	CustomerID  int             `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	Timestamp   time.Time       `json:"timestamp"`
}

type PaymentConfirmedEvent struct {
	EventID     string          `json:"event_id"`
	OrderNumber int             `json:"order_number"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Timestamp   time.Time       `json:"timestamp"`
}
