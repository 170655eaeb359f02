package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item registered on behalf of a client.
type Product struct {
	ProductID    int64           `json:"id"`
	ClientID     int64           `json:"clientId"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	RegisteredAt time.Time       `json:"registeredAt"`
	AuditFields
}
