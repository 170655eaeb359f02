package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// SubscriptionReader defines read operations for client service subscriptions
type SubscriptionReader interface {
	FindSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error)

	// ListSubscriptionsByClient lists every subscription of a client, active or not.
	ListSubscriptionsByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)

	// ListActiveSubscriptionsByClient lists subscriptions of a client with is_active = true.
	ListActiveSubscriptionsByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)
}

// SubscriptionWriter defines write operations for client service subscriptions
type SubscriptionWriter interface {
	SaveSubscription(ctx context.Context, sub *domain.Subscription) error
	UpdateSubscription(ctx context.Context, sub *domain.Subscription) error
	DeleteSubscription(ctx context.Context, subscriptionID int64) error
}

// SubscriptionRepositoryFacade combines all subscription-related repository interfaces
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
