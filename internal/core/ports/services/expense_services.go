package services

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	// ListExpenses returns one page of matching expenses and the total of all matches.
	ListExpenses(ctx context.Context, query domain.RecordQuery) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
