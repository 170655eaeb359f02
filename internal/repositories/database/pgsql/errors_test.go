package pgsql

import (
	"fmt"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	unique := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation})
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}

	assert.ErrorIs(t, mapWriteError(unique, "save"), apperrors.ErrDuplicate)
	assert.ErrorIs(t, mapWriteError(fk, "save"), apperrors.ErrValidation)

	other := mapWriteError(assert.AnError, "save")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, other, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.ErrorIs(t, other, assert.AnError)
}

func TestMapDeleteError(t *testing.T) {
	assert.ErrorIs(t, mapDeleteError(&pgconn.PgError{Code: pgForeignKeyViolation}, "delete"), apperrors.ErrConflict)
	assert.NotErrorIs(t, mapDeleteError(assert.AnError, "delete"), apperrors.ErrConflict)
}

func TestCheckDeleted(t *testing.T) {
	assert.ErrorIs(t, checkDeleted(pgconn.NewCommandTag("DELETE 0")), apperrors.ErrNotFound)
	assert.NoError(t, checkDeleted(pgconn.NewCommandTag("DELETE 1")))
}
