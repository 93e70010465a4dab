package repositories

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// PharmacyReader defines read operations for pharmacy data
type PharmacyReader interface {
	// FindPharmacyByID retrieves a pharmacy by its ID.
	FindPharmacyByID(ctx context.Context, pharmacyID string) (*domain.Pharmacy, error)

	// ListPharmacies retrieves pharmacies ordered by name. A limit of 0 returns all.
	ListPharmacies(ctx context.Context, limit int, offset int) ([]domain.Pharmacy, error)

	// CountPharmacyReferences counts the sales and expenses that reference a pharmacy.
	CountPharmacyReferences(ctx context.Context, pharmacyID string) (int, error)
}

// PharmacyWriter defines write operations for pharmacy data
type PharmacyWriter interface {
	SavePharmacy(ctx context.Context, pharmacy domain.Pharmacy) error
	UpdatePharmacy(ctx context.Context, pharmacy domain.Pharmacy) error
	DeletePharmacy(ctx context.Context, pharmacyID string) error
}

// PharmacyRepositoryFacade combines all pharmacy-related repository interfaces
type PharmacyRepositoryFacade interface {
	PharmacyReader
	PharmacyWriter
}
