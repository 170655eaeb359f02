package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes handled explicitly.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError classifies an INSERT or UPDATE failure.
func mapWriteError(err error, op string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	case pgForeignKeyViolation:
		return fmt.Errorf("%s: referenced record does not exist: %w", op, apperrors.ErrValidation)
	default:
		return apperrors.NewAppError(http.StatusInternalServerError, op, err)
	}
}

// mapDeleteError classifies a DELETE failure. A restricting foreign key
// surfaces as a conflict.
func mapDeleteError(err error, op string) error {
	if pgErrorCode(err) == pgForeignKeyViolation {
		return fmt.Errorf("%s: record is still referenced: %w", op, apperrors.ErrConflict)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, op, err)
}

// checkVersionedUpdate turns a zero-row versioned UPDATE into ErrNotFound when
// the row is gone and ErrConflict when its version moved on.
func (r *BaseRepository) checkVersionedUpdate(ctx context.Context, tag pgconn.CommandTag, table string, id int64) error {
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	// table is always a package constant, never user input.
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table)
	if err := r.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to check "+table+" existence", err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%s %d: %w", table, id, apperrors.ErrConflict)
}

// checkDeleted returns ErrNotFound when a DELETE matched nothing.
func checkDeleted(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
