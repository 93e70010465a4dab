package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	norteID = "11111111-1111-1111-1111-111111111111"
	surID   = "22222222-2222-2222-2222-222222222222"
)

func fixtureSales() []domain.Sale {
	return []domain.Sale{
		{SaleID: "s1", PharmacyID: norteID, PharmacyName: "Norte", Amount: decimal.NewFromInt(1000), RecordType: domain.RecordDaily, Date: date(2025, time.March, 3)},
		{SaleID: "s2", PharmacyID: surID, PharmacyName: "Sur", Amount: decimal.NewFromInt(500), RecordType: domain.RecordDaily, Date: date(2025, time.March, 10)},
		{SaleID: "s3", PharmacyID: norteID, PharmacyName: "Norte", Amount: decimal.NewFromInt(800), RecordType: domain.RecordDaily, Date: date(2025, time.February, 5)},
	}
}

func fixtureExpenses() []domain.Expense {
	return []domain.Expense{
		{ExpenseID: "e1", PharmacyID: norteID, PharmacyName: "Norte", Amount: decimal.NewFromInt(300), Date: date(2025, time.March, 1), ExpenseType: domain.ExpenseFixed, Category: domain.CategoryRent},
	}
}

func fixturePharmacies() []domain.Pharmacy {
	return []domain.Pharmacy{
		{PharmacyID: norteID, Name: "Norte", City: "Monterrey"},
		{PharmacyID: surID, Name: "Sur", City: "Monterrey"},
	}
}

type DashboardServiceTestSuite struct {
	suite.Suite
	mockSales      *MockSaleRepository
	mockExpenses   *MockExpenseRepository
	mockPharmacies *MockPharmacyRepository
	service        portssvc.DashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockSales = new(MockSaleRepository)
	suite.mockExpenses = new(MockExpenseRepository)
	suite.mockPharmacies = new(MockPharmacyRepository)
	suite.service = services.NewDashboardService(suite.mockSales, suite.mockExpenses, suite.mockPharmacies)
}

// expectFullLoad registers the unfiltered loads the dashboard issues concurrently.
func (suite *DashboardServiceTestSuite) expectFullLoad() {
	suite.mockSales.On("ListSalesForAnalysis", mock.Anything, (*string)(nil)).Return(fixtureSales(), nil).Once()
	suite.mockExpenses.On("ListExpensesForAnalysis", mock.Anything, (*string)(nil)).Return(fixtureExpenses(), nil).Once()
	suite.mockPharmacies.On("ListPharmacies", mock.Anything, 0, 0).Return(fixturePharmacies(), nil).Once()
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_MonthSelection() {
	suite.expectFullLoad()
	q := domain.DashboardQuery{
		Filter:      domain.RecordFilter{Year: intPtr(2025), Month: intPtr(3)},
		Granularity: domain.GranularityDay,
	}

	d, err := suite.service.GetDashboard(context.Background(), q)

	suite.Require().NoError(err)
	suite.False(d.Empty)
	suite.True(d.Summary.SalesTotal.Equal(decimal.NewFromInt(1500)))
	suite.True(d.Summary.ExpensesTotal.Equal(decimal.NewFromInt(300)))
	suite.True(d.Summary.Profit.Equal(decimal.NewFromInt(1200)))
	suite.True(d.Summary.MarginPercent.Equal(decimal.NewFromInt(80)))

	suite.Require().NotNil(d.Comparison)
	suite.Empty(d.ComparisonNote)
	suite.Equal(2, d.Comparison.PriorMonth)
	suite.True(d.Comparison.Sales.Prior.Equal(decimal.NewFromInt(800)))
	suite.True(d.Comparison.Sales.Percent.Equal(decimal.RequireFromString("87.5")))
	suite.True(d.Comparison.Expenses.Percent.IsZero(), "zero prior total yields 0%")

	suite.Require().NotNil(d.Projection)
	suite.Equal(31, d.Projection.DaysInMonth)
	suite.True(d.Projection.ProjectedTotal.Equal(decimal.NewFromInt(40000)))

	suite.Len(d.Breakdown, 2)
	suite.Len(d.SalesTrend, 2, "days without records are not filled")
	suite.Require().NotNil(d.TopPharmacy)
	suite.Equal("Norte", d.TopPharmacy.PharmacyName)
	suite.Equal([]int{2025}, d.Options.Years)
	suite.Equal([]int{2, 3}, d.Options.Months)
	suite.Len(d.Options.Pharmacies, 2)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_YearOnlySuppressesComparison() {
	suite.expectFullLoad()
	q := domain.DashboardQuery{Filter: domain.RecordFilter{Year: intPtr(2025)}, Granularity: domain.GranularityMonth}

	d, err := suite.service.GetDashboard(context.Background(), q)

	suite.Require().NoError(err)
	suite.Nil(d.Comparison)
	suite.NotEmpty(d.ComparisonNote)
	suite.Nil(d.Projection)
	suite.NotEmpty(d.ProjectionNote)
	suite.Len(d.SalesTrend, 2)
	suite.True(d.Summary.SalesTotal.Equal(decimal.NewFromInt(2300)))
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_PharmacySelection() {
	suite.expectFullLoad()
	id := surID
	q := domain.DashboardQuery{Filter: domain.RecordFilter{PharmacyID: &id, Year: intPtr(2025), Month: intPtr(3)}}

	d, err := suite.service.GetDashboard(context.Background(), q)

	suite.Require().NoError(err)
	suite.Equal("Sur", d.Period.PharmacyName)
	suite.Equal(domain.GranularityDay, d.Granularity)
	suite.True(d.Summary.SalesTotal.Equal(decimal.NewFromInt(500)))
	suite.True(d.Summary.ExpensesTotal.IsZero())
	suite.Require().NotNil(d.Comparison)
	suite.True(d.Comparison.Sales.Prior.IsZero())
	suite.True(d.Comparison.Sales.Percent.IsZero())
	suite.Len(d.Options.Pharmacies, 2, "options ignore the selection")
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_EmptyPeriod() {
	suite.expectFullLoad()
	q := domain.DashboardQuery{Filter: domain.RecordFilter{Year: intPtr(2024), Month: intPtr(12)}}

	d, err := suite.service.GetDashboard(context.Background(), q)

	suite.Require().NoError(err)
	suite.True(d.Empty)
	suite.True(d.Summary.MarginPercent.IsZero())
	suite.Empty(d.Breakdown)
	suite.Nil(d.TopPharmacy)
	suite.Equal([]int{2025}, d.Options.Years)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_UnknownPharmacy() {
	suite.expectFullLoad()
	id := "33333333-3333-3333-3333-333333333333"
	q := domain.DashboardQuery{Filter: domain.RecordFilter{PharmacyID: &id}}

	_, err := suite.service.GetDashboard(context.Background(), q)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_InvalidGranularity() {
	q := domain.DashboardQuery{Granularity: "quarter"}

	_, err := suite.service.GetDashboard(context.Background(), q)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSales.AssertNotCalled(suite.T(), "ListSalesForAnalysis", mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_LoadError() {
	boom := errors.New("connection reset")
	suite.mockSales.On("ListSalesForAnalysis", mock.Anything, (*string)(nil)).Return(nil, boom).Once()
	suite.mockExpenses.On("ListExpensesForAnalysis", mock.Anything, (*string)(nil)).Return(fixtureExpenses(), nil).Maybe()
	suite.mockPharmacies.On("ListPharmacies", mock.Anything, 0, 0).Return(fixturePharmacies(), nil).Maybe()

	d, err := suite.service.GetDashboard(context.Background(), domain.DashboardQuery{})

	suite.Nil(d)
	suite.ErrorIs(err, boom)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
