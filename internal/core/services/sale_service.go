package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type saleService struct {
	BaseService
	saleRepo     portsrepo.SaleRepositoryFacade
	pharmacyRepo portsrepo.PharmacyReader
}

func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, pharmacyRepo portsrepo.PharmacyReader, options ...ServiceOption) portssvc.SaleSvcFacade {
	return &saleService{
		BaseService:  newBaseService(options...),
		saleRepo:     saleRepo,
		pharmacyRepo: pharmacyRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// resolvePharmacy loads a pharmacy referenced by a record. A missing pharmacy
// is a validation failure of the record, not a missing resource.
func resolvePharmacy(ctx context.Context, repo portsrepo.PharmacyReader, pharmacyID string) (*domain.Pharmacy, error) {
	pharmacy, err := repo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: pharmacy %s does not exist", apperrors.ErrValidation, pharmacyID)
		}
		return nil, fmt.Errorf("failed to load pharmacy %s: %w", pharmacyID, err)
	}
	return pharmacy, nil
}

func describeSale(s domain.Sale) string {
	return fmt.Sprintf("Venta %s de %s para %s (%s)",
		locale.RecordTypeLabel(s.RecordType), locale.FormatMoney(s.Amount), s.PharmacyName, locale.FormatDate(s.Date))
}

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	pharmacy, err := resolvePharmacy(ctx, s.pharmacyRepo, req.PharmacyID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		PharmacyID:   pharmacy.PharmacyID,
		PharmacyName: pharmacy.Name,
		Amount:       req.Amount,
		RecordType:   req.RecordType,
		Date:         domain.DateOnly(date),
		AuditFields:  auditFields(now, creatorUserID),
	}
	if err := sale.Validate(now); err != nil {
		return nil, err
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("pharmacy_id", sale.PharmacyID))
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	s.LogInfo(ctx, "Sale created successfully", slog.String("sale_id", sale.SaleID))
	s.RecordAudit(ctx, creatorUserID, domain.ActionCreateSale, describeSale(sale))
	return &sale, nil
}

func (s *saleService) CreateSalesBulk(ctx context.Context, req dto.BulkSalesRequest, creatorUserID string) ([]domain.Sale, int, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, 0, err
	}

	now := s.Now()
	sales := make([]domain.Sale, 0, len(req.Entries))
	skipped := 0
	total := decimal.Zero
	for _, entry := range req.Entries {
		if !entry.Amount.IsPositive() {
			skipped++
			continue
		}
		pharmacy, err := resolvePharmacy(ctx, s.pharmacyRepo, entry.PharmacyID)
		if err != nil {
			return nil, 0, err
		}
		sale := domain.Sale{
			SaleID:       uuid.NewString(),
			PharmacyID:   pharmacy.PharmacyID,
			PharmacyName: pharmacy.Name,
			Amount:       entry.Amount,
			RecordType:   req.RecordType,
			Date:         domain.DateOnly(date),
			AuditFields:  auditFields(now, creatorUserID),
		}
		if err := sale.Validate(now); err != nil {
			return nil, 0, err
		}
		sales = append(sales, sale)
		total = total.Add(sale.Amount)
	}

	if len(sales) == 0 {
		return nil, skipped, fmt.Errorf("%w: no entry has an amount greater than zero", apperrors.ErrValidation)
	}

	if err := s.saleRepo.SaveSales(ctx, sales); err != nil {
		s.LogError(ctx, err, "Failed to save bulk sales", slog.Int("count", len(sales)))
		return nil, skipped, fmt.Errorf("failed to create sales: %w", err)
	}

	s.LogInfo(ctx, "Bulk sales created successfully", slog.Int("count", len(sales)), slog.Int("skipped", skipped))
	s.RecordAudit(ctx, creatorUserID, domain.ActionBulkSales,
		fmt.Sprintf("%d ventas %s registradas por %s (%s)",
			len(sales), locale.RecordTypeLabel(req.RecordType), locale.FormatMoney(total), locale.FormatDate(date)))
	return sales, skipped, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale %s: %w", saleID, err)
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, query domain.RecordQuery) (*dto.ListSalesResponse, error) {
	if err := query.Filter.Validate(); err != nil {
		return nil, err
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	total, err := s.saleRepo.SumSales(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to total sales")
		return nil, fmt.Errorf("failed to total sales: %w", err)
	}

	return &dto.ListSalesResponse{
		Sales:     dto.ToListSaleResponse(sales),
		Total:     total,
		NextToken: nextToken,
	}, nil
}

func (s *saleService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, userID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale %s: %w", saleID, err)
	}

	if req.PharmacyID != nil && *req.PharmacyID != sale.PharmacyID {
		pharmacy, err := resolvePharmacy(ctx, s.pharmacyRepo, *req.PharmacyID)
		if err != nil {
			return nil, err
		}
		sale.PharmacyID = pharmacy.PharmacyID
		sale.PharmacyName = pharmacy.Name
	}
	if req.Amount != nil {
		sale.Amount = *req.Amount
	}
	if req.RecordType != nil {
		sale.RecordType = *req.RecordType
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		sale.Date = domain.DateOnly(date)
	}

	now := s.Now()
	if err := sale.Validate(now); err != nil {
		return nil, err
	}
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = userID

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	s.RecordAudit(ctx, userID, domain.ActionUpdateSale, describeSale(*sale))
	return sale, nil
}

func (s *saleService) DeleteSale(ctx context.Context, saleID string, userID string) error {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return fmt.Errorf("failed to get sale %s: %w", saleID, err)
	}
	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.String("sale_id", saleID))
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	s.RecordAudit(ctx, userID, domain.ActionDeleteSale, "Eliminada: "+describeSale(*sale))
	return nil
}
