package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSales      *MockSaleRepository
	mockPharmacies *MockPharmacyRepository
	mockAudit      *MockAuditRecorder
	service        portssvc.SaleSvcFacade
	norte          *domain.Pharmacy
	sur            *domain.Pharmacy
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSales = new(MockSaleRepository)
	suite.mockPharmacies = new(MockPharmacyRepository)
	suite.mockAudit = new(MockAuditRecorder)
	suite.service = services.NewSaleService(suite.mockSales, suite.mockPharmacies,
		services.WithAuditRecorder(suite.mockAudit),
		services.WithClock(fixedClock))
	suite.norte = &domain.Pharmacy{PharmacyID: uuid.NewString(), Name: "Norte", City: "Monterrey"}
	suite.sur = &domain.Pharmacy{PharmacyID: uuid.NewString(), Name: "Sur", City: "Monterrey"}
}

func (suite *SaleServiceTestSuite) TestCreateSale_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateSaleRequest{
		PharmacyID: suite.norte.PharmacyID,
		Amount:     decimal.RequireFromString("1250.50"),
		RecordType: domain.RecordDaily,
		Date:       "2025-03-14",
	}

	suite.mockPharmacies.On("FindPharmacyByID", ctx, suite.norte.PharmacyID).Return(suite.norte, nil).Once()
	suite.mockSales.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.PharmacyName == "Norte" && s.Amount.Equal(req.Amount) && s.Date.Equal(date(2025, time.March, 14))
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, userID, domain.ActionCreateSale, mock.AnythingOfType("string")).Once()

	sale, err := suite.service.CreateSale(ctx, req, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(sale.SaleID)
	suite.Equal(userID, sale.CreatedBy)
	suite.mockSales.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_FutureDate() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PharmacyID: suite.norte.PharmacyID,
		Amount:     decimal.NewFromInt(100),
		RecordType: domain.RecordDaily,
		Date:       "2025-03-21",
	}
	suite.mockPharmacies.On("FindPharmacyByID", ctx, suite.norte.PharmacyID).Return(suite.norte, nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSales.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_ZeroAmount() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PharmacyID: suite.norte.PharmacyID,
		Amount:     decimal.Zero,
		RecordType: domain.RecordDaily,
		Date:       "2025-03-10",
	}
	suite.mockPharmacies.On("FindPharmacyByID", ctx, suite.norte.PharmacyID).Return(suite.norte, nil).Once()

	_, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownPharmacy() {
	ctx := context.Background()
	missing := uuid.NewString()
	req := dto.CreateSaleRequest{
		PharmacyID: missing,
		Amount:     decimal.NewFromInt(100),
		RecordType: domain.RecordDaily,
		Date:       "2025-03-10",
	}
	suite.mockPharmacies.On("FindPharmacyByID", ctx, missing).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestCreateSalesBulk_SkipsNonPositive() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.BulkSalesRequest{
		RecordType: domain.RecordWeekly,
		Date:       "2025-03-17",
		Entries: []dto.BulkSaleEntry{
			{PharmacyID: suite.norte.PharmacyID, Amount: decimal.NewFromInt(900)},
			{PharmacyID: suite.sur.PharmacyID, Amount: decimal.Zero},
			{PharmacyID: suite.sur.PharmacyID, Amount: decimal.NewFromInt(-5)},
		},
	}

	suite.mockPharmacies.On("FindPharmacyByID", ctx, suite.norte.PharmacyID).Return(suite.norte, nil).Once()
	suite.mockSales.On("SaveSales", ctx, mock.MatchedBy(func(sales []domain.Sale) bool {
		return len(sales) == 1 && sales[0].PharmacyID == suite.norte.PharmacyID && sales[0].RecordType == domain.RecordWeekly
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, userID, domain.ActionBulkSales, mock.AnythingOfType("string")).Once()

	sales, skipped, err := suite.service.CreateSalesBulk(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Len(sales, 1)
	suite.Equal(2, skipped)
	suite.mockSales.AssertExpectations(suite.T())
	suite.mockPharmacies.AssertNotCalled(suite.T(), "FindPharmacyByID", ctx, suite.sur.PharmacyID)
}

func (suite *SaleServiceTestSuite) TestCreateSalesBulk_AllSkipped() {
	ctx := context.Background()
	req := dto.BulkSalesRequest{
		RecordType: domain.RecordDaily,
		Date:       "2025-03-17",
		Entries: []dto.BulkSaleEntry{
			{PharmacyID: suite.norte.PharmacyID, Amount: decimal.Zero},
		},
	}

	sales, skipped, err := suite.service.CreateSalesBulk(ctx, req, uuid.NewString())

	suite.Nil(sales)
	suite.Equal(1, skipped)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSales.AssertNotCalled(suite.T(), "SaveSales", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestListSales_ReturnsPageAndTotal() {
	ctx := context.Background()
	query := domain.RecordQuery{Filter: domain.RecordFilter{Year: intPtr(2025), Month: intPtr(3)}, Limit: 20}
	page := []domain.Sale{
		{SaleID: uuid.NewString(), PharmacyID: suite.norte.PharmacyID, PharmacyName: "Norte", Amount: decimal.NewFromInt(10), RecordType: domain.RecordDaily, Date: date(2025, time.March, 2)},
	}
	token := "next"

	suite.mockSales.On("ListSales", ctx, query).Return(page, &token, nil).Once()
	suite.mockSales.On("SumSales", ctx, query).Return(decimal.NewFromInt(450), nil).Once()

	resp, err := suite.service.ListSales(ctx, query)

	suite.Require().NoError(err)
	suite.Len(resp.Sales, 1)
	suite.True(resp.Total.Equal(decimal.NewFromInt(450)))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func (suite *SaleServiceTestSuite) TestListSales_InvalidMonth() {
	ctx := context.Background()
	query := domain.RecordQuery{Filter: domain.RecordFilter{Month: intPtr(13)}}

	_, err := suite.service.ListSales(ctx, query)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSales.AssertNotCalled(suite.T(), "ListSales", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestUpdateSale_MovesPharmacy() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Sale{
		SaleID: uuid.NewString(), PharmacyID: suite.norte.PharmacyID, PharmacyName: "Norte",
		Amount: decimal.NewFromInt(10), RecordType: domain.RecordDaily, Date: date(2025, time.March, 2),
	}
	newAmount := decimal.NewFromInt(25)

	suite.mockSales.On("FindSaleByID", ctx, existing.SaleID).Return(existing, nil).Once()
	suite.mockPharmacies.On("FindPharmacyByID", ctx, suite.sur.PharmacyID).Return(suite.sur, nil).Once()
	suite.mockSales.On("UpdateSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.PharmacyID == suite.sur.PharmacyID && s.Amount.Equal(newAmount) && s.LastUpdatedBy == userID
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, userID, domain.ActionUpdateSale, mock.AnythingOfType("string")).Once()

	updated, err := suite.service.UpdateSale(ctx, existing.SaleID,
		dto.UpdateSaleRequest{PharmacyID: &suite.sur.PharmacyID, Amount: &newAmount}, userID)

	suite.Require().NoError(err)
	suite.Equal("Sur", updated.PharmacyName)
	suite.mockSales.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestDeleteSale_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockSales.On("FindSaleByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSale(ctx, id, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSales.AssertNotCalled(suite.T(), "DeleteSale", mock.Anything, mock.Anything)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
