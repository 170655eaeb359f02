package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard/summary", h.getSummary)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Payment counts and totals per effective status. Past-due Pending payments count as Overdue.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetPaymentSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Not found", "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, dto.DashboardSummaryResponse{
		Payments:    *summary,
		GeneratedAt: utils.FormatUTC7(time.Now(), utils.DisplayLayout),
	})
}
