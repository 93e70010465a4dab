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
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	pharmacyRepo portsrepo.PharmacyReader
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, pharmacyRepo portsrepo.PharmacyReader, options ...ServiceOption) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService:  newBaseService(options...),
		expenseRepo:  expenseRepo,
		pharmacyRepo: pharmacyRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func describeExpense(e domain.Expense) string {
	desc := fmt.Sprintf("Gasto %s de %s para %s (%s)",
		e.Category, locale.FormatMoney(e.Amount), e.PharmacyName, locale.FormatDate(e.Date))
	if e.Folio != nil {
		desc += " folio " + *e.Folio
	}
	return desc
}

// checkFolio enforces folio uniqueness within a pharmacy.
func (s *expenseService) checkFolio(ctx context.Context, e domain.Expense) error {
	if e.Folio == nil {
		return nil
	}
	exists, err := s.expenseRepo.FolioExists(ctx, e.PharmacyID, *e.Folio, e.ExpenseID)
	if err != nil {
		return fmt.Errorf("failed to check folio: %w", err)
	}
	if exists {
		return fmt.Errorf("folio %s is already registered for %s: %w", *e.Folio, e.PharmacyName, apperrors.ErrDuplicate)
	}
	return nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	pharmacy, err := resolvePharmacy(ctx, s.pharmacyRepo, req.PharmacyID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		PharmacyID:   pharmacy.PharmacyID,
		PharmacyName: pharmacy.Name,
		Amount:       req.Amount,
		Date:         domain.DateOnly(date),
		ExpenseType:  req.ExpenseType,
		Category:     req.Category,
		Description:  req.Description,
		Folio:        req.Folio,
		AuditFields:  auditFields(now, creatorUserID),
	}
	expense.Normalize()
	if err := expense.Validate(now); err != nil {
		return nil, err
	}
	if err := s.checkFolio(ctx, expense); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("pharmacy_id", expense.PharmacyID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created successfully", slog.String("expense_id", expense.ExpenseID))
	s.RecordAudit(ctx, creatorUserID, domain.ActionCreateExpense, describeExpense(expense))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, query domain.RecordQuery) (*dto.ListExpensesResponse, error) {
	if err := query.Filter.Validate(); err != nil {
		return nil, err
	}
	if query.Category != "" && !query.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, query.Category)
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	total, err := s.expenseRepo.SumExpenses(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to total expenses")
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	return &dto.ListExpensesResponse{
		Expenses:  dto.ToListExpenseResponse(expenses),
		Total:     total,
		NextToken: nextToken,
	}, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}

	if req.PharmacyID != nil && *req.PharmacyID != expense.PharmacyID {
		pharmacy, err := resolvePharmacy(ctx, s.pharmacyRepo, *req.PharmacyID)
		if err != nil {
			return nil, err
		}
		expense.PharmacyID = pharmacy.PharmacyID
		expense.PharmacyName = pharmacy.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = domain.DateOnly(date)
	}
	if req.ExpenseType != nil {
		expense.ExpenseType = *req.ExpenseType
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Folio != nil {
		expense.Folio = req.Folio
	}

	now := s.Now()
	expense.Normalize()
	if err := expense.Validate(now); err != nil {
		return nil, err
	}
	if err := s.checkFolio(ctx, *expense); err != nil {
		return nil, err
	}
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.RecordAudit(ctx, userID, domain.ActionUpdateExpense, describeExpense(*expense))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.RecordAudit(ctx, userID, domain.ActionDeleteExpense, "Eliminado: "+describeExpense(*expense))
	return nil
}
