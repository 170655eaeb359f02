package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const identityColumns = `id, username, password_hash, email, full_name, role, created_at`

type PgxIdentityRepository struct {
	BaseRepository
}

func newPgxIdentityRepository(pool *pgxpool.Pool) portsrepo.IdentityRepositoryFacade {
	return &PgxIdentityRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.IdentityRepositoryFacade = (*PgxIdentityRepository)(nil)

// findOne loads a single identity. where is always a column name chosen by
// this file, never caller input.
func (r *PgxIdentityRepository) findOne(ctx context.Context, where string, arg any) (*domain.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE ` + where + ` = $1;`
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query identity by %s: %w", where, err)
	}
	modelIdentity, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Identity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find identity by %s: %w", where, err)
	}
	identity := mapping.ToDomainIdentity(modelIdentity)
	return &identity, nil
}

func (r *PgxIdentityRepository) FindIdentityByID(ctx context.Context, identityID int64) (*domain.Identity, error) {
	return r.findOne(ctx, "id", identityID)
}

// FindIdentityByUsername matches the username exactly.
func (r *PgxIdentityRepository) FindIdentityByUsername(ctx context.Context, username string) (*domain.Identity, error) {
	return r.findOne(ctx, "username", username)
}

// FindIdentityByEmail matches the e-mail exactly.
func (r *PgxIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.findOne(ctx, "email", email)
}

func (r *PgxIdentityRepository) SaveIdentity(ctx context.Context, identity *domain.Identity) error {
	query := `
		INSERT INTO identities (username, password_hash, email, full_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	m := mapping.ToModelIdentity(*identity)
	err := r.Pool.QueryRow(ctx, query,
		m.Username,
		m.PasswordHash,
		m.Email,
		m.FullName,
		m.Role,
		m.CreatedAt,
	).Scan(&identity.IdentityID)
	if err != nil {
		return mapWriteError(err, "failed to save identity")
	}
	return nil
}
