package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	clientRepo  portsrepo.ClientReader
	notifier    portssvc.NotificationSvc
}

// NewPaymentService creates the payment service. notifier receives a call for
// every recorded payment.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	notifier portssvc.NotificationSvc,
	options ...ServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		notifier:    notifier,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount", "Amount must not be negative")
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("clientId", "Client does not exist")
		}
		return nil, fmt.Errorf("failed to get client %d: %w", req.ClientID, err)
	}

	now := s.Now()
	payment := &domain.Payment{
		ClientID:    req.ClientID,
		Code:        strings.TrimSpace(req.Code),
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate.UTC(),
		DueDate:     req.DueDate.UTC(),
		Method:      req.Method,
		Status:      status,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Payment code already exists")
		}
		s.LogError(ctx, err, "Failed to save payment", slog.Int64("client_id", req.ClientID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.Int64("payment_id", payment.PaymentID),
		slog.Int64("client_id", payment.ClientID),
		slog.String("amount", payment.Amount.String()))

	s.notifier.NotifyPaymentRecorded(ctx, client, payment)
	return payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %d: %w", paymentID, err)
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	payments, next, err := s.paymentRepo.ListPayments(ctx, params.ClientID, portsrepo.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, next, nil
}

// ListOverduePayments filters unsettled payments by their effective status,
// so a Pending payment past its due date is included.
func (s *paymentService) ListOverduePayments(ctx context.Context) ([]domain.Payment, error) {
	unsettled, err := s.paymentRepo.ListUnsettledPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unsettled payments")
		return nil, fmt.Errorf("failed to list overdue payments: %w", err)
	}

	now := s.Now()
	overdue := make([]domain.Payment, 0, len(unsettled))
	for _, p := range unsettled {
		if p.IsOverdue(now) {
			overdue = append(overdue, p)
		}
	}
	return overdue, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %d: %w", paymentID, err)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount", "Amount must not be negative")
	}
	if req.ClientID != existing.ClientID {
		if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("clientId", "Client does not exist")
			}
			return nil, fmt.Errorf("failed to get client %d: %w", req.ClientID, err)
		}
	}

	existing.ClientID = req.ClientID
	existing.Code = strings.TrimSpace(req.Code)
	existing.Amount = req.Amount
	existing.PaymentDate = req.PaymentDate.UTC()
	existing.DueDate = req.DueDate.UTC()
	existing.Method = req.Method
	existing.Status = status
	existing.Notes = req.Notes
	existing.LastUpdatedAt = s.Now()
	existing.Version = req.Version

	if err := s.paymentRepo.UpdatePayment(ctx, existing); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Payment code already exists")
		}
		return nil, fmt.Errorf("failed to update payment %d: %w", paymentID, err)
	}
	return existing, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	s.LogInfo(ctx, "Payment deleted", slog.Int64("payment_id", paymentID))
	return nil
}

func parseStatus(raw string) (domain.PaymentStatus, error) {
	if raw == "" {
		return domain.PaymentPending, nil
	}
	status := domain.PaymentStatus(raw)
	if !status.IsValid() {
		return "", apperrors.NewValidationError("status", "Status must be one of Pending, Paid, Overdue")
	}
	return status, nil
}
