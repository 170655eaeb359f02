package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	serviceColumns = `id, name, description, is_active, created_at, last_updated_at, version`
	feeColumns     = `id, service_id, fee_per_day_per_employee, updated_at, version`
)

// PgxCatalogRepository stores catalogue services and their fees.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func scanService(row pgx.Row) (domain.Service, error) {
	var s domain.Service
	err := row.Scan(&s.ServiceID, &s.Name, &s.Description, &s.IsActive, &s.CreatedAt, &s.LastUpdatedAt, &s.Version)
	return s, err
}

func scanFee(row pgx.Row) (domain.ServiceFee, error) {
	var f domain.ServiceFee
	err := row.Scan(&f.FeeID, &f.ServiceID, &f.FeePerDayPerEmployee, &f.UpdatedAt, &f.Version)
	return f, err
}

func (r *PgxCatalogRepository) FindServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1;`
	s, err := scanService(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %d: %w", serviceID, err)
	}
	return &s, nil
}

// FindServicesByIDs returns the services found, keyed by id. Missing ids are
// simply absent from the map.
func (r *PgxCatalogRepository) FindServicesByIDs(ctx context.Context, serviceIDs []int64) (map[int64]domain.Service, error) {
	result := make(map[int64]domain.Service, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query services by IDs: %w", err)
	}
	services, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Service, error) {
		return scanService(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan services: %w", err)
	}
	for _, s := range services {
		result[s.ServiceID] = s
	}
	return result, nil
}

func (r *PgxCatalogRepository) ListServices(ctx context.Context, limit, offset int) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	services, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Service, error) {
		return scanService(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan services: %w", err)
	}
	return services, nil
}

func (r *PgxCatalogRepository) SaveService(ctx context.Context, service *domain.Service) error {
	query := `
		INSERT INTO services (name, description, is_active, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, 1)
		RETURNING id, version;
	`
	err := r.Pool.QueryRow(ctx, query,
		service.Name, service.Description, service.IsActive, service.CreatedAt, service.LastUpdatedAt,
	).Scan(&service.ServiceID, &service.Version)
	if err != nil {
		return mapWriteError(err, "failed to save service")
	}
	return nil
}

func (r *PgxCatalogRepository) UpdateService(ctx context.Context, service *domain.Service) error {
	query := `
		UPDATE services
		SET name = $3, description = $4, is_active = $5, last_updated_at = $6, version = version + 1
		WHERE id = $1 AND version = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		service.ServiceID, service.Version,
		service.Name, service.Description, service.IsActive, service.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to update service")
	}
	if err := r.checkVersionedUpdate(ctx, tag, "services", service.ServiceID); err != nil {
		return err
	}
	service.Version++
	return nil
}

// DeleteService fails with ErrConflict while employees or subscriptions point
// at the service. Its fee row goes with it.
func (r *PgxCatalogRepository) DeleteService(ctx context.Context, serviceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM services WHERE id = $1;`, serviceID)
	if err != nil {
		return mapDeleteError(err, "failed to delete service")
	}
	return checkDeleted(tag)
}

func (r *PgxCatalogRepository) FindFeeByServiceID(ctx context.Context, serviceID int64) (*domain.ServiceFee, error) {
	query := `SELECT ` + feeColumns + ` FROM service_fees WHERE service_id = $1;`
	f, err := scanFee(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fee for service %d: %w", serviceID, err)
	}
	return &f, nil
}

// FindFeesByServiceIDs returns fees keyed by service id. Services without a fee
// are absent from the map.
func (r *PgxCatalogRepository) FindFeesByServiceIDs(ctx context.Context, serviceIDs []int64) (map[int64]domain.ServiceFee, error) {
	result := make(map[int64]domain.ServiceFee, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + feeColumns + ` FROM service_fees WHERE service_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query service fees: %w", err)
	}
	fees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ServiceFee, error) {
		return scanFee(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan service fees: %w", err)
	}
	for _, f := range fees {
		result[f.ServiceID] = f
	}
	return result, nil
}

// UpsertFee writes the single fee row of a service, creating it on first use.
func (r *PgxCatalogRepository) UpsertFee(ctx context.Context, fee *domain.ServiceFee) error {
	query := `
		INSERT INTO service_fees (service_id, fee_per_day_per_employee, updated_at, version)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (service_id) DO UPDATE SET
			fee_per_day_per_employee = EXCLUDED.fee_per_day_per_employee,
			updated_at = EXCLUDED.updated_at,
			version = service_fees.version + 1
		RETURNING id, version;
	`
	err := r.Pool.QueryRow(ctx, query, fee.ServiceID, fee.FeePerDayPerEmployee, fee.UpdatedAt).Scan(&fee.FeeID, &fee.Version)
	if err != nil {
		return mapWriteError(err, "failed to upsert service fee")
	}
	return nil
}
