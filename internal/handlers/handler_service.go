package handlers

import (
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles the service catalogue and its fees.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerServiceRoutes registers the /services routes, fees included.
func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)
	admin := middleware.RequireTier(domain.TierAdmin)

	services := rg.Group("/services")
	{
		services.POST("", admin, h.createService)
		services.GET("", h.listServices)
		services.GET("/:id", h.getService)
		services.PUT("/:id", admin, h.updateService)
		services.DELETE("/:id", admin, h.deleteService)

		services.GET("/:id/fee", h.getServiceFee)
		services.PUT("/:id/fee", admin, h.setServiceFee)
	}
}

// createService godoc
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} domain.Service
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Service name already exists"
// @Security BearerAuth
// @Router /services [post]
func (h *catalogHandler) createService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Service not found", "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// listServices godoc
// @Summary List services
// @Tags services
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} domain.Service
// @Security BearerAuth
// @Router /services [get]
func (h *catalogHandler) listServices(c *gin.Context) {
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err, "Service not found", "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// getService godoc
// @Summary Get a service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} domain.Service
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *catalogHandler) getService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.catalogService.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Service not found", "Failed to retrieve service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// updateService godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Service details"
// @Success 200 {object} domain.Service
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *catalogHandler) updateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Service not found", "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// deleteService godoc
// @Summary Delete a service
// @Description Fails with 409 while employees or subscriptions still reference the service.
// @Tags services
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *catalogHandler) deleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Service not found", "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

// getServiceFee godoc
// @Summary Get the fee of a service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} domain.ServiceFee
// @Failure 404 {object} ErrorResponse "Service or fee not found"
// @Security BearerAuth
// @Router /services/{id}/fee [get]
func (h *catalogHandler) getServiceFee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fee, err := h.catalogService.GetServiceFee(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "No fee set for this service", "Failed to retrieve service fee")
		return
	}
	c.JSON(http.StatusOK, fee)
}

// setServiceFee godoc
// @Summary Set the fee of a service
// @Description Creates or replaces the per-day, per-employee fee of a service.
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param fee body dto.SetServiceFeeRequest true "Fee"
// @Success 200 {object} domain.ServiceFee
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id}/fee [put]
func (h *catalogHandler) setServiceFee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SetServiceFeeRequest
	if !bindJSON(c, &req) {
		return
	}

	fee, err := h.catalogService.SetServiceFee(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Service not found", "Failed to set service fee")
		return
	}
	c.JSON(http.StatusOK, fee)
}
