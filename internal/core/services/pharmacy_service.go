package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/google/uuid"
)

type pharmacyService struct {
	BaseService
	pharmacyRepo portsrepo.PharmacyRepositoryFacade
}

func NewPharmacyService(repo portsrepo.PharmacyRepositoryFacade, options ...ServiceOption) portssvc.PharmacySvcFacade {
	return &pharmacyService{
		BaseService:  newBaseService(options...),
		pharmacyRepo: repo,
	}
}

var _ portssvc.PharmacySvcFacade = (*pharmacyService)(nil)

func (s *pharmacyService) CreatePharmacy(ctx context.Context, req dto.CreatePharmacyRequest, creatorUserID string) (*domain.Pharmacy, error) {
	pharmacy := domain.Pharmacy{
		PharmacyID:  uuid.NewString(),
		Name:        req.Name,
		City:        req.City,
		AuditFields: auditFields(s.Now(), creatorUserID),
	}
	pharmacy.Normalize()
	if err := pharmacy.Validate(); err != nil {
		return nil, err
	}

	if err := s.pharmacyRepo.SavePharmacy(ctx, pharmacy); err != nil {
		s.LogError(ctx, err, "Failed to save pharmacy", slog.String("pharmacy_name", pharmacy.Name))
		return nil, fmt.Errorf("failed to create pharmacy: %w", err)
	}

	s.LogInfo(ctx, "Pharmacy created successfully", slog.String("pharmacy_id", pharmacy.PharmacyID))
	s.RecordAudit(ctx, creatorUserID, domain.ActionCreatePharmacy,
		fmt.Sprintf("Farmacia %s (%s) creada", pharmacy.Name, pharmacy.City))
	return &pharmacy, nil
}

func (s *pharmacyService) GetPharmacyByID(ctx context.Context, pharmacyID string) (*domain.Pharmacy, error) {
	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pharmacy %s: %w", pharmacyID, err)
	}
	return pharmacy, nil
}

func (s *pharmacyService) ListPharmacies(ctx context.Context, limit, offset int) ([]domain.Pharmacy, error) {
	pharmacies, err := s.pharmacyRepo.ListPharmacies(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pharmacies")
		return nil, fmt.Errorf("failed to list pharmacies: %w", err)
	}
	return pharmacies, nil
}

func (s *pharmacyService) UpdatePharmacy(ctx context.Context, pharmacyID string, req dto.UpdatePharmacyRequest, userID string) (*domain.Pharmacy, error) {
	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pharmacy %s: %w", pharmacyID, err)
	}

	if req.Name != nil {
		pharmacy.Name = *req.Name
	}
	if req.City != nil {
		pharmacy.City = *req.City
	}
	pharmacy.Normalize()
	if err := pharmacy.Validate(); err != nil {
		return nil, err
	}
	pharmacy.LastUpdatedAt = s.Now()
	pharmacy.LastUpdatedBy = userID

	if err := s.pharmacyRepo.UpdatePharmacy(ctx, *pharmacy); err != nil {
		s.LogError(ctx, err, "Failed to update pharmacy", slog.String("pharmacy_id", pharmacyID))
		return nil, fmt.Errorf("failed to update pharmacy: %w", err)
	}

	s.RecordAudit(ctx, userID, domain.ActionUpdatePharmacy,
		fmt.Sprintf("Farmacia %s (%s) actualizada", pharmacy.Name, pharmacy.City))
	return pharmacy, nil
}

func (s *pharmacyService) DeletePharmacy(ctx context.Context, pharmacyID string, userID string) error {
	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return fmt.Errorf("failed to get pharmacy %s: %w", pharmacyID, err)
	}

	refs, err := s.pharmacyRepo.CountPharmacyReferences(ctx, pharmacyID)
	if err != nil {
		return fmt.Errorf("failed to check pharmacy references: %w", err)
	}
	if refs > 0 {
		s.LogInfo(ctx, "Pharmacy still referenced, refusing delete",
			slog.String("pharmacy_id", pharmacyID), slog.Int("references", refs))
		return fmt.Errorf("pharmacy %s has %d sales or expenses: %w", pharmacy.Name, refs, apperrors.ErrInUse)
	}

	if err := s.pharmacyRepo.DeletePharmacy(ctx, pharmacyID); err != nil {
		s.LogError(ctx, err, "Failed to delete pharmacy", slog.String("pharmacy_id", pharmacyID))
		return fmt.Errorf("failed to delete pharmacy: %w", err)
	}

	s.RecordAudit(ctx, userID, domain.ActionDeletePharmacy, fmt.Sprintf("Farmacia %s eliminada", pharmacy.Name))
	return nil
}
