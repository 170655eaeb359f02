package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// NotificationSvc composes and sends client e-mails. Delivery failures are
// logged and never returned.
type NotificationSvc interface {
	NotifyProductRegistered(ctx context.Context, client *domain.Client, product *domain.Product)
	NotifyPaymentRecorded(ctx context.Context, client *domain.Client, payment *domain.Payment)
}
