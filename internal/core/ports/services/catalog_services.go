package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// CatalogReaderSvc defines read operations for the service catalogue.
type CatalogReaderSvc interface {
	GetServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error)
	ListServices(ctx context.Context, limit, offset int) ([]domain.Service, error)
	// GetServiceFee returns the fee of a service, ErrNotFound when none is set.
	GetServiceFee(ctx context.Context, serviceID int64) (*domain.ServiceFee, error)
}

// CatalogWriterSvc defines write operations for the service catalogue.
type CatalogWriterSvc interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceRequest) (*domain.Service, error)
	// DeleteService fails with ErrConflict while employees or subscriptions reference it.
	DeleteService(ctx context.Context, serviceID int64) error
	// SetServiceFee creates or replaces the single fee row of a service.
	SetServiceFee(ctx context.Context, serviceID int64, req dto.SetServiceFeeRequest) (*domain.ServiceFee, error)
}

// CatalogSvcFacade combines all catalogue-related service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
