package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	labeler          locale.Labeler
}

// RegisterDashboardRoutes registers the consolidated dashboard route.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, labeler locale.Labeler) {
	h := &dashboardHandler{dashboardService: dashboardService, labeler: labeler}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Consolidated dashboard
// @Description Totals, comparison with the prior month, per-pharmacy breakdown, trends, month-end projection and KPIs for the selected period.
// @Description Comparison and projection are only computed when both year and month are selected.
// @Tags dashboard
// @Produce json
// @Param pharmacyID query string false "Pharmacy ID"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param granularity query string false "Trend granularity" Enums(day, week, month) default(day)
// @Param weekOfMonth query int false "Restrict the trend to one week of the month (1-5)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown pharmacy"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), params.ToDashboardQuery())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard, h.labeler))
}
