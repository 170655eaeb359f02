package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payments.
type PaymentReaderSvc interface {
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error)
	// ListOverduePayments returns payments whose effective status is Overdue.
	ListOverduePayments(ctx context.Context) ([]domain.Payment, error)
	// Now is the instant effective statuses are derived against.
	Now() time.Time
}

// PaymentWriterSvc defines write operations for payments.
type PaymentWriterSvc interface {
	// CreatePayment records a payment and e-mails a confirmation to the client.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}

// DashboardSvc aggregates figures for the dashboard.
type DashboardSvc interface {
	// GetPaymentSummary counts and sums payments per effective status.
	GetPaymentSummary(ctx context.Context) (*domain.PaymentSummary, error)
}
