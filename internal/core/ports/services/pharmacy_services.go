package services

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
)

// PharmacyReaderSvc defines read operations for pharmacies
type PharmacyReaderSvc interface {
	GetPharmacyByID(ctx context.Context, pharmacyID string) (*domain.Pharmacy, error)
	// ListPharmacies returns pharmacies ordered by name. A limit of 0 returns all.
	ListPharmacies(ctx context.Context, limit, offset int) ([]domain.Pharmacy, error)
}

// PharmacyWriterSvc defines write operations for pharmacies
type PharmacyWriterSvc interface {
	CreatePharmacy(ctx context.Context, req dto.CreatePharmacyRequest, creatorUserID string) (*domain.Pharmacy, error)
	UpdatePharmacy(ctx context.Context, pharmacyID string, req dto.UpdatePharmacyRequest, userID string) (*domain.Pharmacy, error)
	// DeletePharmacy fails with apperrors.ErrInUse while records reference the pharmacy.
	DeletePharmacy(ctx context.Context, pharmacyID string, userID string) error
}

// PharmacySvcFacade combines all pharmacy-related service interfaces
type PharmacySvcFacade interface {
	PharmacyReaderSvc
	PharmacyWriterSvc
}
