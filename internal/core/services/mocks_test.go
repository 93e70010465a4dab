package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Pharmacy repository ---

type MockPharmacyRepository struct {
	mock.Mock
}

func (m *MockPharmacyRepository) FindPharmacyByID(ctx context.Context, pharmacyID string) (*domain.Pharmacy, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pharmacy), args.Error(1)
}

func (m *MockPharmacyRepository) ListPharmacies(ctx context.Context, limit int, offset int) ([]domain.Pharmacy, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pharmacy), args.Error(1)
}

func (m *MockPharmacyRepository) CountPharmacyReferences(ctx context.Context, pharmacyID string) (int, error) {
	args := m.Called(ctx, pharmacyID)
	return args.Int(0), args.Error(1)
}

func (m *MockPharmacyRepository) SavePharmacy(ctx context.Context, pharmacy domain.Pharmacy) error {
	return m.Called(ctx, pharmacy).Error(0)
}

func (m *MockPharmacyRepository) UpdatePharmacy(ctx context.Context, pharmacy domain.Pharmacy) error {
	return m.Called(ctx, pharmacy).Error(0)
}

func (m *MockPharmacyRepository) DeletePharmacy(ctx context.Context, pharmacyID string) error {
	return m.Called(ctx, pharmacyID).Error(0)
}

// --- Sale repository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, query domain.RecordQuery) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, query)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Sale), token, args.Error(2)
}

func (m *MockSaleRepository) SumSales(ctx context.Context, query domain.RecordQuery) (decimal.Decimal, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSaleRepository) ListSalesForAnalysis(ctx context.Context, pharmacyID *string) ([]domain.Sale, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) SaveSales(ctx context.Context, sales []domain.Sale) error {
	return m.Called(ctx, sales).Error(0)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	return m.Called(ctx, saleID).Error(0)
}

// --- Expense repository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, query domain.RecordQuery) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, query)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), token, args.Error(2)
}

func (m *MockExpenseRepository) SumExpenses(ctx context.Context, query domain.RecordQuery) (decimal.Decimal, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesForAnalysis(ctx context.Context, pharmacyID *string) ([]domain.Expense, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FolioExists(ctx context.Context, pharmacyID, folio, excludeExpenseID string) (bool, error) {
	args := m.Called(ctx, pharmacyID, folio, excludeExpenseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return m.Called(ctx, expenseID).Error(0)
}

// --- User repository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) MarkUserLoggedIn(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Audit ---

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.AuditLog), token, args.Error(2)
}

func (m *MockAuditLogRepository) SummarizeAuditLogs(ctx context.Context, filter domain.AuditLogFilter) (*domain.AuditSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditSummary), args.Error(1)
}

// MockAuditRecorder captures audit entries written by the services under test.
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, userID string, action domain.AuditAction, description string) {
	m.Called(ctx, userID, action, description)
}

// fixedClock pins the services to 2025-03-20 12:00 UTC.
func fixedClock() time.Time {
	return time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
