package dto

import (
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// CreatePharmacyRequest defines the data needed to register a pharmacy.
type CreatePharmacyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	City string `json:"city" binding:"required,max=255"`
}

// UpdatePharmacyRequest defines the fields that may change on a pharmacy.
type UpdatePharmacyRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	City *string `json:"city" binding:"omitempty,max=255"`
}

// ListPharmaciesParams defines query parameters for listing pharmacies.
// A limit of 0 returns every pharmacy.
type ListPharmaciesParams struct {
	Limit  int `form:"limit,default=0" binding:"omitempty,min=0"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

type PharmacyResponse struct {
	PharmacyID    string    `json:"pharmacyID"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

func ToPharmacyResponse(p *domain.Pharmacy) PharmacyResponse {
	return PharmacyResponse{
		PharmacyID:    p.PharmacyID,
		Name:          p.Name,
		City:          p.City,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

func ToListPharmacyResponse(pharmacies []domain.Pharmacy) []PharmacyResponse {
	res := make([]PharmacyResponse, len(pharmacies))
	for i := range pharmacies {
		res[i] = ToPharmacyResponse(&pharmacies[i])
	}
	return res
}
