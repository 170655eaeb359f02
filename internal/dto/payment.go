package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a payment for a client. Status defaults to Pending.
type CreatePaymentRequest struct {
	ClientID    int64           `json:"clientId" binding:"required,min=1"`
	Code        string          `json:"code" binding:"required,notblank,max=50"`
	Amount      decimal.Decimal `json:"amount" binding:"decimalgte0"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
	Method      string          `json:"method" binding:"max=50"`
	Status      string          `json:"status" binding:"omitempty,oneof=Pending Paid Overdue"`
	Notes       string          `json:"notes"`
}

// UpdatePaymentRequest replaces a payment.
type UpdatePaymentRequest struct {
	CreatePaymentRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ListPaymentsParams defines token pagination for payments.
type ListPaymentsParams struct {
	ClientID  *int64  `form:"clientId" binding:"omitempty,min=1"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// PaymentResponse exposes a payment with its derived status.
// StoredStatus is the raw column value.
type PaymentResponse struct {
	PaymentID    int64                `json:"id"`
	ClientID     int64                `json:"clientId"`
	Code         string               `json:"code"`
	Amount       decimal.Decimal      `json:"amount"`
	PaymentDate  time.Time            `json:"paymentDate"`
	DueDate      time.Time            `json:"dueDate"`
	Method       string               `json:"method"`
	Status       domain.PaymentStatus `json:"status"`
	StoredStatus domain.PaymentStatus `json:"storedStatus"`
	Notes        string               `json:"notes"`
	CreatedAt    time.Time            `json:"createdAt"`
	Version      int                  `json:"version"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment, deriving its status at now.
func ToPaymentResponse(p domain.Payment, now time.Time) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		ClientID:     p.ClientID,
		Code:         p.Code,
		Amount:       p.Amount,
		PaymentDate:  p.PaymentDate,
		DueDate:      p.DueDate,
		Method:       p.Method,
		Status:       p.EffectiveStatus(now),
		StoredStatus: p.Status,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		Version:      p.Version,
	}
}

// ToPaymentResponses converts a slice of domain.Payment.
func ToPaymentResponses(payments []domain.Payment, now time.Time) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(p, now)
	}
	return res
}

// DashboardSummaryResponse carries the payment aggregates of the dashboard.
type DashboardSummaryResponse struct {
	Payments    domain.PaymentSummary `json:"payments"`
	GeneratedAt string                `json:"generatedAt"`
}
