package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// subscriptionHandler handles client service subscriptions and cost calculation.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
	billingService      portssvc.BillingSvc
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade, bs portssvc.BillingSvc) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss, billingService: bs}
}

// registerClientServiceRoutes registers the /client-services routes.
func registerClientServiceRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade, billingService portssvc.BillingSvc) {
	h := newSubscriptionHandler(subscriptionService, billingService)
	manager := middleware.RequireTier(domain.TierManager)

	subs := rg.Group("/client-services")
	{
		subs.POST("", manager, h.createSubscription)
		subs.GET("", h.listSubscriptions)
		subs.GET("/calculate-cost/:clientId", h.calculateCost)
		subs.GET("/:id", h.getSubscription)
		subs.PUT("/:id", manager, h.updateSubscription)
		subs.DELETE("/:id", manager, h.deleteSubscription)
	}
}

// createSubscription godoc
// @Summary Subscribe a client to a service
// @Tags client-services
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} domain.Subscription
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-services [post]
func (h *subscriptionHandler) createSubscription(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Subscription not found", "Failed to create subscription")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// listSubscriptions godoc
// @Summary List the subscriptions of a client
// @Tags client-services
// @Produce json
// @Param clientId query int true "Client ID"
// @Success 200 {array} domain.Subscription
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-services [get]
func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	var params dto.ListSubscriptionsParams
	if !bindQuery(c, &params) {
		return
	}

	subs, err := h.subscriptionService.ListSubscriptionsByClient(c.Request.Context(), params.ClientID)
	if err != nil {
		handleServiceError(c, err, "Client not found", "Failed to list subscriptions")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// getSubscription godoc
// @Summary Get a subscription by ID
// @Tags client-services
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} domain.Subscription
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-services/{id} [get]
func (h *subscriptionHandler) getSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.subscriptionService.GetSubscriptionByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Subscription not found", "Failed to retrieve subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// updateSubscription godoc
// @Summary Update a subscription
// @Tags client-services
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param subscription body dto.UpdateSubscriptionRequest true "Subscription details"
// @Success 200 {object} domain.Subscription
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-services/{id} [put]
func (h *subscriptionHandler) updateSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Subscription not found", "Failed to update subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// deleteSubscription godoc
// @Summary Delete a subscription
// @Tags client-services
// @Param id path int true "Subscription ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-services/{id} [delete]
func (h *subscriptionHandler) deleteSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Subscription not found", "Failed to delete subscription")
		return
	}
	c.Status(http.StatusNoContent)
}

// calculateCost godoc
// @Summary Calculate what a client owes
// @Description Sums fee x employees x days over the active subscriptions of a client.
// @Tags client-services
// @Produce json
// @Param clientId path int true "Client ID"
// @Success 200 {object} dto.CostBreakdownResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-services/calculate-cost/{clientId} [get]
func (h *subscriptionHandler) calculateCost(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	breakdown, err := h.billingService.CalculateTotalCost(c.Request.Context(), clientID)
	if err != nil {
		handleServiceError(c, err, "Client not found", "Failed to calculate cost")
		return
	}

	c.JSON(http.StatusOK, dto.CostBreakdownResponse{
		ClientID:     breakdown.ClientID,
		TotalCost:    breakdown.TotalCost.StringFixed(2),
		Details:      breakdown.Details,
		CalculatedAt: utils.FormatUTC7(time.Now(), utils.DisplayLayout),
	})
}
