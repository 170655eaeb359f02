package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CreateSubscriptionRequest subscribes a client to a service.
type CreateSubscriptionRequest struct {
	ClientID          int64      `json:"clientId" binding:"required,min=1"`
	ServiceID         int64      `json:"serviceId" binding:"required,min=1"`
	EmployeeID        *int64     `json:"employeeId" binding:"omitempty,min=1"`
	NumberOfEmployees int        `json:"numberOfEmployees" binding:"required,min=1"`
	StartDate         time.Time  `json:"startDate" binding:"required"`
	EndDate           *time.Time `json:"endDate"`
	IsActive          *bool      `json:"isActive"`
}

// UpdateSubscriptionRequest replaces a subscription.
type UpdateSubscriptionRequest struct {
	CreateSubscriptionRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ListSubscriptionsParams filters subscriptions by client.
type ListSubscriptionsParams struct {
	ClientID int64 `form:"clientId" binding:"required,min=1"`
}

// CostBreakdownResponse is the response of the cost calculation endpoint.
type CostBreakdownResponse struct {
	ClientID     int64                 `json:"clientId"`
	TotalCost    string                `json:"totalCost"`
	Details      []domain.CostLineItem `json:"details"`
	CalculatedAt string                `json:"calculatedAt"`
}
