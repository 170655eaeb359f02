package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

// IsValid reports whether s is one of the known statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

// Payment is an amount owed or paid by a client. Status is the stored value;
// use EffectiveStatus for anything shown to a user or aggregated.
type Payment struct {
	PaymentID   int64           `json:"id"`
	ClientID    int64           `json:"clientId"`
	Code        string          `json:"code"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	DueDate     time.Time       `json:"dueDate"`
	Method      string          `json:"method"`
	Status      PaymentStatus   `json:"status"`
	Notes       string          `json:"notes"`
	AuditFields
}

// EffectiveStatus derives the authoritative status at instant now: a payment
// stored as Overdue, or stored as Pending with a due date before now, is
// Overdue. Any other payment keeps its stored status.
func (p Payment) EffectiveStatus(now time.Time) PaymentStatus {
	if p.Status == PaymentOverdue {
		return PaymentOverdue
	}
	if p.Status == PaymentPending && p.DueDate.Before(now) {
		return PaymentOverdue
	}
	return p.Status
}

// IsOverdue is shorthand for EffectiveStatus(now) == PaymentOverdue.
func (p Payment) IsOverdue(now time.Time) bool {
	return p.EffectiveStatus(now) == PaymentOverdue
}

// StatusTotals is the count and amount sum of payments sharing a status.
type StatusTotals struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentSummary aggregates payments by effective status.
type PaymentSummary struct {
	Pending StatusTotals `json:"pending"`
	Paid    StatusTotals `json:"paid"`
	Overdue StatusTotals `json:"overdue"`
}

// SummarizePayments groups payments by their effective status at now.
func SummarizePayments(payments []Payment, now time.Time) PaymentSummary {
	summary := PaymentSummary{
		Pending: StatusTotals{Amount: decimal.Zero},
		Paid:    StatusTotals{Amount: decimal.Zero},
		Overdue: StatusTotals{Amount: decimal.Zero},
	}
	for _, p := range payments {
		var bucket *StatusTotals
		switch p.EffectiveStatus(now) {
		case PaymentPending:
			bucket = &summary.Pending
		case PaymentPaid:
			bucket = &summary.Paid
		case PaymentOverdue:
			bucket = &summary.Overdue
		default:
			continue
		}
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(p.Amount)
	}
	return summary
}
