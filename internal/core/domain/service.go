package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an entry of the service catalogue offered to clients.
type Service struct {
	ServiceID   int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// ServiceFee is the daily rate charged per assigned employee for a service.
// There is at most one fee per service.
type ServiceFee struct {
	FeeID                int64           `json:"id"`
	ServiceID            int64           `json:"serviceId"`
	FeePerDayPerEmployee decimal.Decimal `json:"feePerDayPerEmployee"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	Version              int             `json:"version"`
}
