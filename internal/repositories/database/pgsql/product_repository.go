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

const productColumns = `id, client_id, code, name, description, price, registered_at, created_at, last_updated_at, version`

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ProductID, &p.ClientID, &p.Code, &p.Name, &p.Description, &p.Price, &p.RegisteredAt,
		&p.CreatedAt, &p.LastUpdatedAt, &p.Version)
	return p, err
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`
	p, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %d: %w", productID, err)
	}
	return &p, nil
}

// ListProducts lists products newest first, optionally for one client.
func (r *PgxProductRepository) ListProducts(ctx context.Context, clientID *int64, limit, offset int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1::BIGINT IS NULL OR client_id = $1)
		ORDER BY registered_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (client_id, code, name, description, price, registered_at, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		RETURNING id, version;
	`
	err := r.Pool.QueryRow(ctx, query,
		product.ClientID, product.Code, product.Name, product.Description, product.Price,
		product.RegisteredAt, product.CreatedAt, product.LastUpdatedAt,
	).Scan(&product.ProductID, &product.Version)
	if err != nil {
		return mapWriteError(err, "failed to save product")
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, productID)
	if err != nil {
		return mapDeleteError(err, "failed to delete product")
	}
	return checkDeleted(tag)
}
