package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportHandler struct {
	reportService portssvc.ReportSvc
}

// RegisterReportRoutes registers the report download route.
func RegisterReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvc) {
	h := &reportHandler{reportService: reportService}
	rg.GET("/reports/:format", h.downloadReport)
}

// reportFilename builds the attachment name, e.g. "reporte_2025_03_sales.csv".
func reportFilename(format domain.ReportFormat, f domain.RecordFilter) string {
	parts := []string{"reporte"}
	if f.Year != nil {
		parts = append(parts, fmt.Sprintf("%04d", *f.Year))
	}
	if f.Month != nil {
		parts = append(parts, fmt.Sprintf("%02d", *f.Month))
	}
	parts = append(parts, strings.ReplaceAll(string(format), ".", "_"))
	name := strings.Join(parts, "_")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		name = name[:i] + "." + name[i+1:]
	}
	return name
}

// downloadReport godoc
// @Summary Download a report
// @Description Renders the selected period as a document. Periods without sales or expenses yield 422.
// @Tags reports
// @Produce application/pdf
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format path string true "Report" Enums(financial.pdf, summary.pdf, expenses.pdf, sales.csv, expenses.csv, pharmacies.xlsx)
// @Param pharmacyID query string false "Pharmacy ID"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown report format"
// @Failure 422 {object} ErrorResponse "No data for the selected period"
// @Security BearerAuth
// @Router /reports/{format} [get]
func (h *reportHandler) downloadReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	format := domain.ReportFormat(c.Param("format"))
	if !format.IsValid() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown report format: " + string(format)})
		return
	}

	var params dto.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	// Render fully before writing so a failure can still produce a JSON error.
	filter := params.ToRecordFilter()
	var buf bytes.Buffer
	if err := h.reportService.RenderReport(c.Request.Context(), format, filter, &buf, userID); err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Info("Report generated", slog.String("format", string(format)), slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reportFilename(format, filter)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
