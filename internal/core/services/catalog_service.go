package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates the service managing catalogue services and their fees.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade, options ...ServiceOption) portssvc.CatalogSvcFacade {
	svc := &catalogService{catalogRepo: catalogRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error) {
	now := s.Now()
	service := &domain.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, true),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := s.catalogRepo.SaveService(ctx, service); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("name", "Service name already exists")
		}
		s.LogError(ctx, err, "Failed to save service", slog.String("name", service.Name))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	service, err := s.catalogRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service %d: %w", serviceID, err)
	}
	return service, nil
}

func (s *catalogService) ListServices(ctx context.Context, limit, offset int) ([]domain.Service, error) {
	services, err := s.catalogRepo.ListServices(ctx, portsrepo.NormalizeLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceRequest) (*domain.Service, error) {
	existing, err := s.catalogRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service %d: %w", serviceID, err)
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Description = req.Description
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.LastUpdatedAt = s.Now()
	existing.Version = req.Version

	if err := s.catalogRepo.UpdateService(ctx, existing); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("name", "Service name already exists")
		}
		return nil, fmt.Errorf("failed to update service %d: %w", serviceID, err)
	}
	return existing, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID int64) error {
	if err := s.catalogRepo.DeleteService(ctx, serviceID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return &apperrors.FieldError{Field: "id", Message: "Service is still used by employees or subscriptions", Kind: apperrors.ErrConflict}
		}
		return fmt.Errorf("failed to delete service %d: %w", serviceID, err)
	}
	s.LogInfo(ctx, "Service deleted", slog.Int64("service_id", serviceID))
	return nil
}

func (s *catalogService) GetServiceFee(ctx context.Context, serviceID int64) (*domain.ServiceFee, error) {
	fee, err := s.catalogRepo.FindFeeByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee of service %d: %w", serviceID, err)
	}
	return fee, nil
}

func (s *catalogService) SetServiceFee(ctx context.Context, serviceID int64, req dto.SetServiceFeeRequest) (*domain.ServiceFee, error) {
	if req.FeePerDayPerEmployee.IsNegative() {
		return nil, apperrors.NewValidationError("feePerDayPerEmployee", "Fee must not be negative")
	}
	if _, err := s.catalogRepo.FindServiceByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("failed to get service %d: %w", serviceID, err)
	}

	fee := &domain.ServiceFee{
		ServiceID:            serviceID,
		FeePerDayPerEmployee: req.FeePerDayPerEmployee,
		UpdatedAt:            s.Now(),
	}
	if err := s.catalogRepo.UpsertFee(ctx, fee); err != nil {
		s.LogError(ctx, err, "Failed to upsert service fee", slog.Int64("service_id", serviceID))
		return nil, fmt.Errorf("failed to set fee of service %d: %w", serviceID, err)
	}
	s.LogInfo(ctx, "Service fee set",
		slog.Int64("service_id", serviceID),
		slog.String("fee", fee.FeePerDayPerEmployee.String()))
	return fee, nil
}
