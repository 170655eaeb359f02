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

const subscriptionColumns = `id, client_id, service_id, employee_id, number_of_employees, start_date, end_date,
	is_active, created_at, last_updated_at, version`

// PgxSubscriptionRepository stores rows of the client_services table.
type PgxSubscriptionRepository struct {
	BaseRepository
}

func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func scanSubscription(row pgx.Row) (domain.Subscription, error) {
	var s domain.Subscription
	err := row.Scan(&s.SubscriptionID, &s.ClientID, &s.ServiceID, &s.EmployeeID, &s.NumberOfEmployees,
		&s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.LastUpdatedAt, &s.Version)
	return s, err
}

func (r *PgxSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM client_services WHERE id = $1;`
	s, err := scanSubscription(r.Pool.QueryRow(ctx, query, subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription by ID %d: %w", subscriptionID, err)
	}
	return &s, nil
}

func (r *PgxSubscriptionRepository) list(ctx context.Context, query string, clientID int64) ([]domain.Subscription, error) {
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions for client %d: %w", clientID, err)
	}
	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscription, error) {
		return scanSubscription(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan subscriptions: %w", err)
	}
	return subs, nil
}

func (r *PgxSubscriptionRepository) ListSubscriptionsByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	return r.list(ctx, `SELECT `+subscriptionColumns+` FROM client_services WHERE client_id = $1 ORDER BY start_date ASC, id ASC;`, clientID)
}

func (r *PgxSubscriptionRepository) ListActiveSubscriptionsByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	return r.list(ctx, `SELECT `+subscriptionColumns+` FROM client_services WHERE client_id = $1 AND is_active ORDER BY start_date ASC, id ASC;`, clientID)
}

func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO client_services (client_id, service_id, employee_id, number_of_employees, start_date, end_date,
			is_active, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)
		RETURNING id, version;
	`
	err := r.Pool.QueryRow(ctx, query,
		sub.ClientID, sub.ServiceID, sub.EmployeeID, sub.NumberOfEmployees, sub.StartDate, sub.EndDate,
		sub.IsActive, sub.CreatedAt, sub.LastUpdatedAt,
	).Scan(&sub.SubscriptionID, &sub.Version)
	if err != nil {
		return mapWriteError(err, "failed to save subscription")
	}
	return nil
}

func (r *PgxSubscriptionRepository) UpdateSubscription(ctx context.Context, sub *domain.Subscription) error {
	query := `
		UPDATE client_services
		SET client_id = $3, service_id = $4, employee_id = $5, number_of_employees = $6,
		    start_date = $7, end_date = $8, is_active = $9, last_updated_at = $10, version = version + 1
		WHERE id = $1 AND version = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		sub.SubscriptionID, sub.Version,
		sub.ClientID, sub.ServiceID, sub.EmployeeID, sub.NumberOfEmployees,
		sub.StartDate, sub.EndDate, sub.IsActive, sub.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to update subscription")
	}
	if err := r.checkVersionedUpdate(ctx, tag, "client_services", sub.SubscriptionID); err != nil {
		return err
	}
	sub.Version++
	return nil
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM client_services WHERE id = $1;`, subscriptionID)
	if err != nil {
		return mapDeleteError(err, "failed to delete subscription")
	}
	return checkDeleted(tag)
}
