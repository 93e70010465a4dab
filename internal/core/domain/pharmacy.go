package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
)

// Pharmacy is a store location that owns sales and expense records.
type Pharmacy struct {
	PharmacyID string `json:"pharmacyID"` // Primary Key (UUID)
	Name       string `json:"name"`
	City       string `json:"city"`
	AuditFields
}

// Normalize trims surrounding whitespace from the descriptive fields.
func (p *Pharmacy) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.City = strings.TrimSpace(p.City)
}

// Validate checks that name and city are present.
func (p Pharmacy) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: pharmacy name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: pharmacy city is required", apperrors.ErrValidation)
	}
	return nil
}
