package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", middleware.RequireTier(domain.TierManager), h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/overdue", h.listOverduePayments)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", middleware.RequireTier(domain.TierManager), h.updatePayment)
		payments.DELETE("/:id", middleware.RequireTier(domain.TierAdmin), h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment and e-mails a confirmation to the client.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payment code already exists"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Payment not found", "Failed to create payment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment recorded", slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment, h.paymentService.Now()))
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments newest first. Pass nextToken from the previous page to continue.
// @Tags payments
// @Produce json
// @Param clientId query int false "Client ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid nextToken"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if !bindQuery(c, &params) {
		return
	}

	payments, nextToken, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Payment not found", "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments, h.paymentService.Now()),
		NextToken: nextToken,
	})
}

// listOverduePayments godoc
// @Summary List overdue payments
// @Description Payments stored as Overdue and Pending payments past their due date.
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /payments/overdue [get]
func (h *paymentHandler) listOverduePayments(c *gin.Context) {
	payments, err := h.paymentService.ListOverduePayments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Payment not found", "Failed to list overdue payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments, h.paymentService.Now()))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Payment not found", "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(*payment, h.paymentService.Now()))
}

// updatePayment godoc
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Payment details"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Payment not found", "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(*payment, h.paymentService.Now()))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Payment not found", "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
