package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// RegisterSaleRoutes registers the sales registration and consultation routes.
func RegisterSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	ensureValidators()
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.POST("/bulk", h.createSalesBulk)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
		sales.PUT("/:saleID", h.updateSale)
		sales.DELETE("/:saleID", h.deleteSale)
	}
}

// createSale godoc
// @Summary Register a sale
// @Description Registers one pharmacy's sales for a date. The amount must be positive and the date not in the future.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// createSalesBulk godoc
// @Summary Register sales for several pharmacies
// @Description Shares record type and date across entries. Entries with an amount of zero or less are skipped; the rest are stored together.
// @Tags sales
// @Accept json
// @Produce json
// @Param sales body dto.BulkSalesRequest true "Entries"
// @Success 201 {object} dto.BulkSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/bulk [post]
func (h *saleHandler) createSalesBulk(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulk sales request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sales, skipped, err := h.saleService.CreateSalesBulk(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create sales")
		return
	}

	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Amount)
	}
	logger.Info("Bulk sales registered", slog.Int("created", len(sales)), slog.Int("skipped", skipped))
	c.JSON(http.StatusCreated, dto.BulkSalesResponse{
		Created: len(sales),
		Skipped: skipped,
		Total:   total,
		Sales:   dto.ToListSaleResponse(sales),
	})
}

// listSales godoc
// @Summary Consult sales
// @Description Newest first, keyset paginated. The total covers every matching sale, not just the page.
// @Tags sales
// @Produce json
// @Param pharmacyID query string false "Pharmacy ID"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param search query string false "Pharmacy name contains"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params.ToRecordQuery())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Update a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param saleID path string true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to change"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [put]
func (h *saleHandler) updateSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), c.Param("saleID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Tags sales
// @Param saleID path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.saleService.DeleteSale(c.Request.Context(), c.Param("saleID"), userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}
