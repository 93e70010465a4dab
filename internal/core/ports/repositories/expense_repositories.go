package repositories

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses returns one page of expenses, newest first, and the next page token.
	ListExpenses(ctx context.Context, query domain.RecordQuery) ([]domain.Expense, *string, error)

	// SumExpenses totals every expense matching the query, ignoring paging.
	SumExpenses(ctx context.Context, query domain.RecordQuery) (decimal.Decimal, error)

	// ListExpensesForAnalysis loads all expenses, optionally for a single pharmacy.
	ListExpensesForAnalysis(ctx context.Context, pharmacyID *string) ([]domain.Expense, error)

	// FolioExists reports whether a pharmacy already has an expense with folio,
	// ignoring the expense with excludeExpenseID.
	FolioExists(ctx context.Context, pharmacyID, folio, excludeExpenseID string) (bool, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
