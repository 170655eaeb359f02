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

const clientColumns = `id, code, name, email, phone, address, is_active, created_at, last_updated_at, version`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ClientID, &c.Code, &c.Name, &c.Email, &c.Phone, &c.Address, &c.IsActive,
		&c.CreatedAt, &c.LastUpdatedAt, &c.Version)
	return c, err
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1;`
	c, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %d: %w", clientID, err)
	}
	return &c, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (code, name, email, phone, address, is_active, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		RETURNING id, version;
	`
	err := r.Pool.QueryRow(ctx, query,
		client.Code, client.Name, client.Email, client.Phone, client.Address, client.IsActive,
		client.CreatedAt, client.LastUpdatedAt,
	).Scan(&client.ClientID, &client.Version)
	if err != nil {
		return mapWriteError(err, "failed to save client")
	}
	return nil
}

// UpdateClient replaces the record when client.Version matches the stored
// version and bumps it on success.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET code = $3, name = $4, email = $5, phone = $6, address = $7, is_active = $8,
		    last_updated_at = $9, version = version + 1
		WHERE id = $1 AND version = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.ClientID, client.Version,
		client.Code, client.Name, client.Email, client.Phone, client.Address, client.IsActive,
		client.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to update client")
	}
	if err := r.checkVersionedUpdate(ctx, tag, "clients", client.ClientID); err != nil {
		return err
	}
	client.Version++
	return nil
}

// DeleteClient removes the client together with its subscriptions, payments
// and products.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1;`, clientID)
	if err != nil {
		return mapDeleteError(err, "failed to delete client")
	}
	return checkDeleted(tag)
}
