package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/handlers"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockDashboardService *MockDashboardService
	mockReportService    *MockReportService
	adminID              string
}

func (suite *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockDashboardService = new(MockDashboardService)
	suite.mockReportService = new(MockReportService)
	suite.adminID = uuid.NewString()

	admin := suite.router.Group("/api/v1", middleware.RequireAdmin())
	handlers.RegisterDashboardRoutes(admin, suite.mockDashboardService, locale.Labeler{})
	handlers.RegisterReportRoutes(admin, suite.mockReportService)
}

func (suite *AdminHandlerTestSuite) get(url string, role domain.Role) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(&suite.Suite, suite.adminID, role))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int { return &v }

func (suite *AdminHandlerTestSuite) TestDashboard_Admin() {
	dashboard := &domain.Dashboard{
		Period: domain.PeriodDescriptor{Year: intPtr(2025), Month: intPtr(3)},
		Summary: domain.FinancialSummary{
			SalesTotal:    decimal.NewFromInt(1500),
			ExpensesTotal: decimal.NewFromInt(300),
			Profit:        decimal.NewFromInt(1200),
			MarginPercent: decimal.NewFromInt(80),
		},
		Comparison:     &domain.MonthComparison{PriorYear: 2025, PriorMonth: 2},
		Granularity:    domain.GranularityWeek,
		ProjectionNote: apperrors.ErrProjectionNotApplicable.Error(),
	}
	suite.mockDashboardService.On("GetDashboard", mock.Anything,
		mock.MatchedBy(func(q domain.DashboardQuery) bool {
			return q.Granularity == domain.GranularityWeek &&
				q.Filter.Year != nil && *q.Filter.Year == 2025 &&
				q.Filter.Month != nil && *q.Filter.Month == 3
		}),
	).Return(dashboard, nil).Once()

	w := suite.get("/api/v1/dashboard?year=2025&month=3&granularity=week", domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("Marzo 2025", res.Period.Label)
	suite.True(res.Summary.Profit.Equal(decimal.NewFromInt(1200)))
	suite.True(res.Comparison.Applicable)
	suite.Equal("vs Febrero 2025", res.Comparison.Label)
	suite.False(res.Projection.Applicable)
	suite.Equal(apperrors.ErrProjectionNotApplicable.Error(), res.Projection.Reason)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *AdminHandlerTestSuite) TestDashboard_DefaultsToDailyTrend() {
	suite.mockDashboardService.On("GetDashboard", mock.Anything,
		mock.MatchedBy(func(q domain.DashboardQuery) bool {
			return q.Granularity == domain.GranularityDay && q.Filter.Year == nil && q.Filter.Month == nil
		}),
	).Return(&domain.Dashboard{Empty: true}, nil).Once()

	w := suite.get("/api/v1/dashboard", domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *AdminHandlerTestSuite) TestDashboard_EmployeeForbidden() {
	w := suite.get("/api/v1/dashboard", domain.RoleEmployee)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockDashboardService.AssertNotCalled(suite.T(), "GetDashboard")
}

func (suite *AdminHandlerTestSuite) TestDashboard_InvalidGranularity() {
	w := suite.get("/api/v1/dashboard?granularity=year", domain.RoleAdmin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboardService.AssertNotCalled(suite.T(), "GetDashboard")
}

func (suite *AdminHandlerTestSuite) TestDashboard_UnknownPharmacy() {
	suite.mockDashboardService.On("GetDashboard", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/dashboard?pharmacyID="+uuid.NewString(), domain.RoleAdmin)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AdminHandlerTestSuite) TestReport_SalesCSV() {
	suite.mockReportService.On("RenderReport", mock.Anything, domain.ReportSalesCSV,
		mock.MatchedBy(func(f domain.RecordFilter) bool {
			return f.Year != nil && *f.Year == 2025 && f.Month != nil && *f.Month == 3 && f.PharmacyID == nil
		}),
		mock.Anything, suite.adminID,
	).Run(func(args mock.Arguments) {
		_, _ = io.WriteString(args.Get(3).(io.Writer), "Fecha,Farmacia\n")
	}).Return(nil).Once()

	w := suite.get("/api/v1/reports/sales.csv?year=2025&month=3", domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(domain.ReportSalesCSV.ContentType(), w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="reporte_2025_03_sales.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal("Fecha,Farmacia\n", w.Body.String())
}

func (suite *AdminHandlerTestSuite) TestReport_NoData() {
	suite.mockReportService.On("RenderReport", mock.Anything, domain.ReportFinancialPDF, mock.Anything, mock.Anything, suite.adminID).
		Return(apperrors.ErrNoData).Once()

	w := suite.get("/api/v1/reports/financial.pdf?year=2023", domain.RoleAdmin)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Empty(w.Header().Get("Content-Disposition"))
}

func (suite *AdminHandlerTestSuite) TestReport_UnknownFormat() {
	w := suite.get("/api/v1/reports/ledger.docx", domain.RoleAdmin)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "RenderReport")
}

func TestAdminHandlers(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
