package services

import (
	"bytes"
	"context"
	"html"
	"html/template"
	"time"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/utils"
)

const productRegisteredTmpl = `<html><body>
<p>Dear {{.ClientName}},</p>
<p>Your product has been registered successfully.</p>
<table>
<tr><td>Code</td><td>{{.Code}}</td></tr>
<tr><td>Name</td><td>{{.Name}}</td></tr>
<tr><td>Price</td><td>{{.Price}}</td></tr>
<tr><td>Registered at</td><td>{{.RegisteredAt}}</td></tr>
</table>
<p>Sent {{.SentAt}}</p>
</body></html>`

const paymentRecordedTmpl = `<html><body>
<p>Dear {{.ClientName}},</p>
<p>We have recorded the following payment.</p>
<table>
<tr><td>Code</td><td>{{.Code}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Method</td><td>{{.Method}}</td></tr>
<tr><td>Payment date</td><td>{{.PaymentDate}}</td></tr>
<tr><td>Due date</td><td>{{.DueDate}}</td></tr>
<tr><td>Status</td><td>{{.Status}}</td></tr>
</table>
<p>Sent {{.SentAt}}</p>
</body></html>`

// displayTime keeps the " (UTC+7)" suffix literal; html/template would
// otherwise render '+' as &#43;.
func displayTime(t time.Time) template.HTML {
	return template.HTML(html.EscapeString(utils.FormatUTC7(t, "")))
}

var (
	productRegisteredTemplate = template.Must(template.New("product_registered").Parse(productRegisteredTmpl))
	paymentRecordedTemplate   = template.Must(template.New("payment_recorded").Parse(paymentRecordedTmpl))
)

type productRegisteredData struct {
	ClientName   string
	Code         string
	Name         string
	Price        string
	RegisteredAt template.HTML
	SentAt       template.HTML
}

type paymentRecordedData struct {
	ClientName  string
	Code        string
	Amount      string
	Method      string
	PaymentDate template.HTML
	DueDate     template.HTML
	Status      string
	SentAt      template.HTML
}

type notificationService struct {
	BaseService
	mailer portssvc.Mailer
}

// NewNotificationService creates the client e-mail service.
func NewNotificationService(mailer portssvc.Mailer, options ...ServiceOption) portssvc.NotificationSvc {
	svc := &notificationService{mailer: mailer}
	svc.apply(options)
	return svc
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

func (s *notificationService) NotifyProductRegistered(ctx context.Context, client *domain.Client, product *domain.Product) {
	if client == nil || product == nil || client.Email == "" {
		s.LogDebug(ctx, "Skipping product registration e-mail: no recipient")
		return
	}
	data := productRegisteredData{
		ClientName:   client.Name,
		Code:         product.Code,
		Name:         product.Name,
		Price:        product.Price.StringFixed(2),
		RegisteredAt: displayTime(product.RegisteredAt),
		SentAt:       displayTime(s.Now()),
	}
	s.send(ctx, client.Email, "Product registration confirmation: "+product.Code, productRegisteredTemplate, data)
}

func (s *notificationService) NotifyPaymentRecorded(ctx context.Context, client *domain.Client, payment *domain.Payment) {
	if client == nil || payment == nil || client.Email == "" {
		s.LogDebug(ctx, "Skipping payment confirmation e-mail: no recipient")
		return
	}
	now := s.Now()
	data := paymentRecordedData{
		ClientName:  client.Name,
		Code:        payment.Code,
		Amount:      payment.Amount.StringFixed(2),
		Method:      payment.Method,
		PaymentDate: displayTime(payment.PaymentDate),
		DueDate:     displayTime(payment.DueDate),
		Status:      string(payment.EffectiveStatus(now)),
		SentAt:      displayTime(now),
	}
	s.send(ctx, client.Email, "Payment confirmation: "+payment.Code, paymentRecordedTemplate, data)
}

// send renders and delivers a message. Failures are logged only.
func (s *notificationService) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		s.LogError(ctx, err, "Failed to render e-mail", slog.String("template", tmpl.Name()))
		return
	}
	if err := s.mailer.Send(ctx, to, subject, body.String(), true); err != nil {
		s.LogError(ctx, err, "Failed to send e-mail",
			slog.String("template", tmpl.Name()),
			slog.String("to", to))
		return
	}
	s.LogInfo(ctx, "E-mail sent", slog.String("template", tmpl.Name()), slog.String("to", to))
}
