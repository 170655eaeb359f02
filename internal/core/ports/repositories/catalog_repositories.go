package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ServiceReader defines read operations for the service catalogue
type ServiceReader interface {
	FindServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error)

	// FindServicesByIDs returns the services found, keyed by id. Missing ids are omitted.
	FindServicesByIDs(ctx context.Context, serviceIDs []int64) (map[int64]domain.Service, error)

	ListServices(ctx context.Context, limit, offset int) ([]domain.Service, error)
}

// ServiceWriter defines write operations for the service catalogue
type ServiceWriter interface {
	SaveService(ctx context.Context, service *domain.Service) error
	UpdateService(ctx context.Context, service *domain.Service) error

	// DeleteService fails with apperrors.ErrConflict while employees or subscriptions reference it.
	DeleteService(ctx context.Context, serviceID int64) error
}

// ServiceFeeReader defines read operations for service fees
type ServiceFeeReader interface {
	FindFeeByServiceID(ctx context.Context, serviceID int64) (*domain.ServiceFee, error)

	// FindFeesByServiceIDs returns the fees found, keyed by service id. Services without a fee are omitted.
	FindFeesByServiceIDs(ctx context.Context, serviceIDs []int64) (map[int64]domain.ServiceFee, error)
}

// ServiceFeeWriter defines write operations for service fees
type ServiceFeeWriter interface {
	// UpsertFee creates the fee of a service or replaces the existing one.
	UpsertFee(ctx context.Context, fee *domain.ServiceFee) error
}

// CatalogRepositoryFacade combines service and fee repository interfaces
type CatalogRepositoryFacade interface {
	ServiceReader
	ServiceWriter
	ServiceFeeReader
	ServiceFeeWriter
}
