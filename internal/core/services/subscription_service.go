package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	clientRepo       portsrepo.ClientReader
	catalogRepo      portsrepo.ServiceReader
	employeeRepo     portsrepo.EmployeeReader
}

// NewSubscriptionService creates the service managing client service subscriptions.
func NewSubscriptionService(
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	catalogRepo portsrepo.ServiceReader,
	employeeRepo portsrepo.EmployeeReader,
	options ...ServiceOption,
) portssvc.SubscriptionSvcFacade {
	svc := &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		clientRepo:       clientRepo,
		catalogRepo:      catalogRepo,
		employeeRepo:     employeeRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	now := s.Now()
	sub := &domain.Subscription{
		ClientID:          req.ClientID,
		ServiceID:         req.ServiceID,
		EmployeeID:        req.EmployeeID,
		NumberOfEmployees: req.NumberOfEmployees,
		StartDate:         req.StartDate.UTC(),
		EndDate:           utcPtr(req.EndDate),
		IsActive:          boolOrDefault(req.IsActive, true),
		AuditFields:       domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		s.LogError(ctx, err, "Failed to save subscription", slog.Int64("client_id", req.ClientID))
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.LogInfo(ctx, "Subscription created",
		slog.Int64("subscription_id", sub.SubscriptionID),
		slog.Int64("client_id", sub.ClientID),
		slog.Int64("service_id", sub.ServiceID))
	return sub, nil
}

func (s *subscriptionService) GetSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %d: %w", subscriptionID, err)
	}
	return sub, nil
}

func (s *subscriptionService) ListSubscriptionsByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	subs, err := s.subscriptionRepo.ListSubscriptionsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions of client %d: %w", clientID, err)
	}
	return subs, nil
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, subscriptionID int64, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	existing, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %d: %w", subscriptionID, err)
	}
	if err := s.validate(ctx, req.CreateSubscriptionRequest); err != nil {
		return nil, err
	}

	existing.ClientID = req.ClientID
	existing.ServiceID = req.ServiceID
	existing.EmployeeID = req.EmployeeID
	existing.NumberOfEmployees = req.NumberOfEmployees
	existing.StartDate = req.StartDate.UTC()
	existing.EndDate = utcPtr(req.EndDate)
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.LastUpdatedAt = s.Now()
	existing.Version = req.Version

	if err := s.subscriptionRepo.UpdateSubscription(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update subscription %d: %w", subscriptionID, err)
	}
	return existing, nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, subscriptionID int64) error {
	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriptionID); err != nil {
		return fmt.Errorf("failed to delete subscription %d: %w", subscriptionID, err)
	}
	return nil
}

func (s *subscriptionService) validate(ctx context.Context, req dto.CreateSubscriptionRequest) error {
	if req.NumberOfEmployees < 1 {
		return apperrors.NewValidationError("numberOfEmployees", "Number of employees must be at least 1")
	}
	if req.EndDate != nil && domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return apperrors.NewValidationError("endDate", "End date must not be before start date")
	}
	if err := mustExist(ctx, func(ctx context.Context) error {
		_, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
		return err
	}, "clientId", "Client does not exist"); err != nil {
		return err
	}
	if err := mustExist(ctx, func(ctx context.Context) error {
		_, err := s.catalogRepo.FindServiceByID(ctx, req.ServiceID)
		return err
	}, "serviceId", "Service does not exist"); err != nil {
		return err
	}
	if req.EmployeeID != nil {
		return mustExist(ctx, func(ctx context.Context) error {
			_, err := s.employeeRepo.FindEmployeeByID(ctx, *req.EmployeeID)
			return err
		}, "employeeId", "Employee does not exist")
	}
	return nil
}

// mustExist turns a not-found lookup of a referenced record into a validation error.
func mustExist(ctx context.Context, lookup func(context.Context) error, field, message string) error {
	err := lookup(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationError(field, message)
	}
	return fmt.Errorf("failed to check %s: %w", field, err)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
