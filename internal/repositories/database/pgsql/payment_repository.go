package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, client_id, code, amount, payment_date, due_date, method, status, notes,
	created_at, last_updated_at, version`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.PaymentID, &p.ClientID, &p.Code, &p.Amount, &p.PaymentDate, &p.DueDate, &p.Method,
		&p.Status, &p.Notes, &p.CreatedAt, &p.LastUpdatedAt, &p.Version)
	return p, err
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		return scanPayment(row)
	})
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1;`
	p, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %d: %w", paymentID, err)
	}
	return &p, nil
}

// ListPayments pages through payments newest first using an opaque
// (created_at, id) cursor. The returned token is nil on the last page.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, clientID *int64, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = portsrepo.DefaultListLimit
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE TRUE`
	args := []any{}

	if clientID != nil {
		args = append(args, *clientID)
		query += ` AND client_id = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC, id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query payments", err)
	}
	payments, err := collectPayments(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan payments", err)
	}

	var nextTokenVal *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PaymentID)
		nextTokenVal = &token
	}
	return payments, nextTokenVal, nil
}

// ListUnsettledPayments returns every payment not stored as Paid.
func (r *PgxPaymentRepository) ListUnsettledPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status <> $1 ORDER BY due_date ASC, id ASC;`
	rows, err := r.Pool.Query(ctx, query, domain.PaymentPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to query unsettled payments: %w", err)
	}
	payments, err := collectPayments(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan unsettled payments: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) ListAllPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	payments, err := collectPayments(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (client_id, code, amount, payment_date, due_date, method, status, notes,
			created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1)
		RETURNING id, version;
	`
	err := r.Pool.QueryRow(ctx, query,
		payment.ClientID, payment.Code, payment.Amount, payment.PaymentDate, payment.DueDate,
		payment.Method, payment.Status, payment.Notes, payment.CreatedAt, payment.LastUpdatedAt,
	).Scan(&payment.PaymentID, &payment.Version)
	if err != nil {
		return mapWriteError(err, "failed to save payment")
	}
	return nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET client_id = $3, code = $4, amount = $5, payment_date = $6, due_date = $7, method = $8,
		    status = $9, notes = $10, last_updated_at = $11, version = version + 1
		WHERE id = $1 AND version = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		payment.PaymentID, payment.Version,
		payment.ClientID, payment.Code, payment.Amount, payment.PaymentDate, payment.DueDate,
		payment.Method, payment.Status, payment.Notes, payment.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to update payment")
	}
	if err := r.checkVersionedUpdate(ctx, tag, "payments", payment.PaymentID); err != nil {
		return err
	}
	payment.Version++
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE id = $1;`, paymentID)
	if err != nil {
		return mapDeleteError(err, "failed to delete payment")
	}
	return checkDeleted(tag)
}
