package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/export"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
)

type reportService struct {
	BaseService
	saleRepo     portsrepo.SaleReader
	expenseRepo  portsrepo.ExpenseReader
	pharmacyRepo portsrepo.PharmacyReader
	companyName  string
}

func NewReportService(saleRepo portsrepo.SaleReader, expenseRepo portsrepo.ExpenseReader, pharmacyRepo portsrepo.PharmacyReader, companyName string, options ...ServiceOption) portssvc.ReportSvc {
	return &reportService{
		BaseService:  newBaseService(options...),
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		pharmacyRepo: pharmacyRepo,
		companyName:  companyName,
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) BuildReportData(ctx context.Context, f domain.RecordFilter) (*domain.ReportData, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, s.saleRepo, s.expenseRepo, s.pharmacyRepo, f.PharmacyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load report data")
		return nil, err
	}

	period, err := describePeriod(f, snap.pharmacies)
	if err != nil {
		return nil, err
	}

	sales := analytics.FilterSales(snap.sales, f)
	expenses := analytics.FilterExpenses(snap.expenses, f)
	if len(sales) == 0 && len(expenses) == 0 {
		return nil, apperrors.ErrNoData
	}

	return &domain.ReportData{
		Period:         period,
		GeneratedAt:    s.Now(),
		Summary:        analytics.Summarize(sales, expenses),
		Breakdown:      analytics.PharmacyBreakdown(sales, expenses),
		ExpenseSummary: analytics.SummarizeExpenses(expenses, topExpenseCategories),
		Sales:          sales,
		Expenses:       expenses,
	}, nil
}

func (s *reportService) RenderReport(ctx context.Context, format domain.ReportFormat, f domain.RecordFilter, w io.Writer, userID string) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: unknown report format %q", apperrors.ErrValidation, format)
	}

	data, err := s.BuildReportData(ctx, f)
	if err != nil {
		return err
	}

	switch format {
	case domain.ReportFinancialPDF:
		err = export.WriteFinancialPDF(w, data, s.companyName)
	case domain.ReportSummaryPDF:
		err = export.WriteSummaryPDF(w, data, s.companyName)
	case domain.ReportExpensesPDF:
		err = export.WriteExpensesPDF(w, data, s.companyName)
	case domain.ReportSalesCSV:
		err = export.WriteSalesCSV(w, data.Sales)
	case domain.ReportExpensesCSV:
		err = export.WriteExpensesCSV(w, data.Expenses)
	case domain.ReportPharmaciesXLSX:
		err = export.WritePharmaciesXLSX(w, data)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("format", string(format)))
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	s.LogInfo(ctx, "Report rendered", slog.String("format", string(format)))
	if userID != "" {
		s.RecordAudit(ctx, userID, domain.ActionExportReport,
			fmt.Sprintf("Reporte %s exportado (%s)", format, locale.PeriodTitle(data.Period)))
	}
	return nil
}
