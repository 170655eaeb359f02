package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	paymentRepo portsrepo.PaymentReader
}

// NewDashboardService creates the dashboard aggregation service.
func NewDashboardService(paymentRepo portsrepo.PaymentReader, options ...ServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{paymentRepo: paymentRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetPaymentSummary(ctx context.Context) (*domain.PaymentSummary, error) {
	payments, err := s.paymentRepo.ListAllPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for dashboard")
		return nil, fmt.Errorf("failed to summarize payments: %w", err)
	}
	summary := domain.SummarizePayments(payments, s.Now())
	return &summary, nil
}
