package dto

import (
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest registers one expense. Folio is required for Mercancia.
type CreateExpenseRequest struct {
	PharmacyID  string                 `json:"pharmacyID" binding:"required,uuid"`
	Amount      decimal.Decimal        `json:"amount" binding:"required" swaggertype:"string" example:"3500.00"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02,notfuture"`
	ExpenseType domain.ExpenseType     `json:"expenseType" binding:"required,oneof=fixed variable"`
	Category    domain.ExpenseCategory `json:"category" binding:"required"`
	Description string                 `json:"description" binding:"max=500"`
	Folio       *string                `json:"folio" binding:"omitempty,max=50"`
}

// UpdateExpenseRequest uses pointers to distinguish omitted fields.
type UpdateExpenseRequest struct {
	PharmacyID  *string                 `json:"pharmacyID" binding:"omitempty,uuid"`
	Amount      *decimal.Decimal        `json:"amount" swaggertype:"string"`
	Date        *string                 `json:"date" binding:"omitempty,datetime=2006-01-02,notfuture"`
	ExpenseType *domain.ExpenseType     `json:"expenseType" binding:"omitempty,oneof=fixed variable"`
	Category    *domain.ExpenseCategory `json:"category"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
	Folio       *string                 `json:"folio" binding:"omitempty,max=50"`
}

type ExpenseResponse struct {
	ExpenseID        string                 `json:"expenseID"`
	PharmacyID       string                 `json:"pharmacyID"`
	PharmacyName     string                 `json:"pharmacyName"`
	Amount           decimal.Decimal        `json:"amount" swaggertype:"string"`
	Date             string                 `json:"date"`
	ExpenseType      domain.ExpenseType     `json:"expenseType"`
	ExpenseTypeLabel string                 `json:"expenseTypeLabel"`
	Category         domain.ExpenseCategory `json:"category"`
	Description      string                 `json:"description"`
	Folio            *string                `json:"folio,omitempty"`
	CreatedBy        string                 `json:"createdBy"`
}

// ListExpensesResponse is one page of expenses plus the total of every matching row.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	Total     decimal.Decimal   `json:"total" swaggertype:"string"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ExpenseCategoriesResponse lists the accepted categories.
type ExpenseCategoriesResponse struct {
	Categories []domain.ExpenseCategory `json:"categories"`
}

func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		PharmacyID:       e.PharmacyID,
		PharmacyName:     e.PharmacyName,
		Amount:           e.Amount,
		Date:             e.Date.Format(DateLayout),
		ExpenseType:      e.ExpenseType,
		ExpenseTypeLabel: locale.ExpenseTypeLabel(e.ExpenseType),
		Category:         e.Category,
		Description:      e.Description,
		Folio:            e.Folio,
		CreatedBy:        e.CreatedBy,
	}
}

func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
