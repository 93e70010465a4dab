package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type pharmacyHandler struct {
	pharmacyService portssvc.PharmacySvcFacade
}

func newPharmacyHandler(ps portssvc.PharmacySvcFacade) *pharmacyHandler {
	return &pharmacyHandler{pharmacyService: ps}
}

// RegisterPharmacyRoutes registers the pharmacy routes. Any authenticated user
// may read them; changes require the admin role.
func RegisterPharmacyRoutes(rg *gin.RouterGroup, pharmacyService portssvc.PharmacySvcFacade) {
	h := newPharmacyHandler(pharmacyService)

	pharmacies := rg.Group("/pharmacies")
	{
		pharmacies.GET("", h.listPharmacies)
		pharmacies.GET("/:pharmacyID", h.getPharmacy)

		admin := pharmacies.Group("", middleware.RequireAdmin())
		admin.POST("", h.createPharmacy)
		admin.PUT("/:pharmacyID", h.updatePharmacy)
		admin.DELETE("/:pharmacyID", h.deletePharmacy)
	}
}

// createPharmacy godoc
// @Summary Create a pharmacy
// @Tags pharmacies
// @Accept json
// @Produce json
// @Param pharmacy body dto.CreatePharmacyRequest true "Pharmacy details"
// @Success 201 {object} dto.PharmacyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pharmacies [post]
func (h *pharmacyHandler) createPharmacy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePharmacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create pharmacy request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	pharmacy, err := h.pharmacyService.CreatePharmacy(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create pharmacy")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPharmacyResponse(pharmacy))
}

// listPharmacies godoc
// @Summary List pharmacies
// @Description Pharmacies ordered by name. A limit of 0 returns all of them.
// @Tags pharmacies
// @Produce json
// @Param limit query int false "Limit" default(0)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PharmacyResponse
// @Security BearerAuth
// @Router /pharmacies [get]
func (h *pharmacyHandler) listPharmacies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPharmaciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	pharmacies, err := h.pharmacyService.ListPharmacies(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list pharmacies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPharmacyResponse(pharmacies))
}

// getPharmacy godoc
// @Summary Get a pharmacy
// @Tags pharmacies
// @Produce json
// @Param pharmacyID path string true "Pharmacy ID"
// @Success 200 {object} dto.PharmacyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pharmacies/{pharmacyID} [get]
func (h *pharmacyHandler) getPharmacy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pharmacy, err := h.pharmacyService.GetPharmacyByID(c.Request.Context(), c.Param("pharmacyID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve pharmacy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPharmacyResponse(pharmacy))
}

// updatePharmacy godoc
// @Summary Update a pharmacy
// @Tags pharmacies
// @Accept json
// @Produce json
// @Param pharmacyID path string true "Pharmacy ID"
// @Param pharmacy body dto.UpdatePharmacyRequest true "Fields to change"
// @Success 200 {object} dto.PharmacyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pharmacies/{pharmacyID} [put]
func (h *pharmacyHandler) updatePharmacy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePharmacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	pharmacy, err := h.pharmacyService.UpdatePharmacy(c.Request.Context(), c.Param("pharmacyID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update pharmacy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPharmacyResponse(pharmacy))
}

// deletePharmacy godoc
// @Summary Delete a pharmacy
// @Description Fails with 409 while sales or expenses reference the pharmacy.
// @Tags pharmacies
// @Param pharmacyID path string true "Pharmacy ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /pharmacies/{pharmacyID} [delete]
func (h *pharmacyHandler) deletePharmacy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	pharmacyID := c.Param("pharmacyID")
	if err := h.pharmacyService.DeletePharmacy(c.Request.Context(), pharmacyID, userID); err != nil {
		respondWithError(c, logger.With(slog.String("pharmacy_id", pharmacyID)), err, "Failed to delete pharmacy")
		return
	}
	c.Status(http.StatusNoContent)
}
