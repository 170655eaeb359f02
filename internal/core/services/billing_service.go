package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type billingService struct {
	BaseService
	clientRepo       portsrepo.ClientReader
	subscriptionRepo portsrepo.SubscriptionReader
	catalogRepo      portsrepo.CatalogRepositoryFacade
}

// NewBillingService creates the cost calculation service.
func NewBillingService(
	clientRepo portsrepo.ClientReader,
	subscriptionRepo portsrepo.SubscriptionReader,
	catalogRepo portsrepo.CatalogRepositoryFacade,
	options ...ServiceOption,
) portssvc.BillingSvc {
	svc := &billingService{
		clientRepo:       clientRepo,
		subscriptionRepo: subscriptionRepo,
		catalogRepo:      catalogRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.BillingSvc = (*billingService)(nil)

func (s *billingService) CalculateTotalCost(ctx context.Context, clientID int64) (*domain.CostBreakdown, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("failed to get client %d: %w", clientID, err)
	}

	breakdown := &domain.CostBreakdown{
		ClientID:  clientID,
		TotalCost: decimal.Zero,
		Details:   []domain.CostLineItem{},
	}

	subs, err := s.subscriptionRepo.ListActiveSubscriptionsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active subscriptions", slog.Int64("client_id", clientID))
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return breakdown, nil
	}

	serviceIDs := make([]int64, 0, len(subs))
	seen := make(map[int64]struct{}, len(subs))
	for _, sub := range subs {
		if _, ok := seen[sub.ServiceID]; !ok {
			seen[sub.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, sub.ServiceID)
		}
	}

	fees, err := s.catalogRepo.FindFeesByServiceIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load service fees: %w", err)
	}
	services, err := s.catalogRepo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	now := s.Now()
	for _, sub := range subs {
		fee, ok := fees[sub.ServiceID]
		if !ok {
			s.LogDebug(ctx, "Skipping subscription without service fee",
				slog.Int64("subscription_id", sub.SubscriptionID),
				slog.Int64("service_id", sub.ServiceID))
			continue
		}
		cost := sub.Cost(fee.FeePerDayPerEmployee, now)
		breakdown.Details = append(breakdown.Details, domain.CostLineItem{
			SubscriptionID:       sub.SubscriptionID,
			ServiceID:            sub.ServiceID,
			ServiceName:          services[sub.ServiceID].Name,
			NumberOfEmployees:    sub.NumberOfEmployees,
			Days:                 sub.DaysBilled(now),
			FeePerDayPerEmployee: fee.FeePerDayPerEmployee,
			Cost:                 cost,
		})
		breakdown.TotalCost = breakdown.TotalCost.Add(cost)
	}

	return breakdown, nil
}
