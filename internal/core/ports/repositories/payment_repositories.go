package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPayments returns a page of payments ordered newest first, plus the
	// token of the next page (nil on the last page).
	ListPayments(ctx context.Context, clientID *int64, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// ListUnsettledPayments returns every payment whose stored status is not Paid.
	ListUnsettledPayments(ctx context.Context) ([]domain.Payment, error)

	// ListAllPayments returns every payment, used for dashboard aggregates.
	ListAllPayments(ctx context.Context) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment *domain.Payment) error
	UpdatePayment(ctx context.Context, payment *domain.Payment) error
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
