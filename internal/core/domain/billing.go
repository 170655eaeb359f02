package domain

import "github.com/shopspring/decimal"

// CostLineItem is the cost contribution of one active subscription.
type CostLineItem struct {
	SubscriptionID       int64           `json:"subscriptionId"`
	ServiceID            int64           `json:"serviceId"`
	ServiceName          string          `json:"serviceName"`
	NumberOfEmployees    int             `json:"numberOfEmployees"`
	Days                 int             `json:"days"`
	FeePerDayPerEmployee decimal.Decimal `json:"feePerDay"`
	Cost                 decimal.Decimal `json:"cost"`
}

// CostBreakdown is the total service cost for a client.
type CostBreakdown struct {
	ClientID  int64           `json:"clientId"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Details   []CostLineItem  `json:"details"`
}
