package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderNotification records a placed order as shown in the notification list.
type OrderNotification struct {
	OrderID     string          `json:"order_id"`
	Products    []Product       `json:"products"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	CreatedAt   time.Time       `json:"created_at"`
}
