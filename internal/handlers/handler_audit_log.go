package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditLogHandler struct {
	auditService portssvc.AuditSvcFacade
}

// RegisterAuditLogRoutes registers the audit log consultation routes.
func RegisterAuditLogRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := &auditLogHandler{auditService: auditService}

	logs := rg.Group("/audit-logs")
	{
		logs.GET("", h.listAuditLogs)
		logs.GET("/summary", h.summarizeAuditLogs)
	}
}

// listAuditLogs godoc
// @Summary Consult the audit log
// @Tags audit
// @Produce json
// @Param userName query string false "User name"
// @Param action query string false "Action"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param search query string false "Description contains"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditLogHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for audit logs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.auditService.ListAuditLogs(c.Request.Context(), params.ToFilter(), params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditLogsResponse(entries, nextToken))
}

// summarizeAuditLogs godoc
// @Summary Audit log activity counts
// @Tags audit
// @Produce json
// @Param userName query string false "User name"
// @Param action query string false "Action"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} domain.AuditSummary
// @Security BearerAuth
// @Router /audit-logs/summary [get]
func (h *auditLogHandler) summarizeAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.auditService.SummarizeAuditLogs(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarize audit logs")
		return
	}
	c.JSON(http.StatusOK, summary)
}
