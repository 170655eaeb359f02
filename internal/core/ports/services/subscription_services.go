package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// SubscriptionReaderSvc defines read operations for client service subscriptions.
type SubscriptionReaderSvc interface {
	GetSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error)
	ListSubscriptionsByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)
}

// SubscriptionWriterSvc defines write operations for client service subscriptions.
type SubscriptionWriterSvc interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID int64, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID int64) error
}

// SubscriptionSvcFacade combines all subscription-related service interfaces.
type SubscriptionSvcFacade interface {
	SubscriptionReaderSvc
	SubscriptionWriterSvc
}

// BillingSvc computes what a client owes for its active subscriptions.
type BillingSvc interface {
	// CalculateTotalCost sums fee * employees * days over the client's active
	// subscriptions. Subscriptions whose service has no fee are skipped.
	CalculateTotalCost(ctx context.Context, clientID int64) (*domain.CostBreakdown, error)
}
