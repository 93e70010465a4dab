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
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"golang.org/x/sync/errgroup"
)

const topExpenseCategories = 3

type dashboardService struct {
	BaseService
	saleRepo     portsrepo.SaleReader
	expenseRepo  portsrepo.ExpenseReader
	pharmacyRepo portsrepo.PharmacyReader
}

func NewDashboardService(saleRepo portsrepo.SaleReader, expenseRepo portsrepo.ExpenseReader, pharmacyRepo portsrepo.PharmacyReader, options ...ServiceOption) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:  newBaseService(options...),
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		pharmacyRepo: pharmacyRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// snapshot is one request's view of the records.
type snapshot struct {
	sales      []domain.Sale
	expenses   []domain.Expense
	pharmacies []domain.Pharmacy
}

// loadSnapshot fetches sales, expenses and pharmacies concurrently. A nil
// pharmacyID loads every pharmacy's records.
func loadSnapshot(ctx context.Context, saleRepo portsrepo.SaleReader, expenseRepo portsrepo.ExpenseReader, pharmacyRepo portsrepo.PharmacyReader, pharmacyID *string) (*snapshot, error) {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sales, err := saleRepo.ListSalesForAnalysis(gctx, pharmacyID)
		if err != nil {
			return fmt.Errorf("failed to load sales: %w", err)
		}
		snap.sales = sales
		return nil
	})
	g.Go(func() error {
		expenses, err := expenseRepo.ListExpensesForAnalysis(gctx, pharmacyID)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		snap.expenses = expenses
		return nil
	})
	g.Go(func() error {
		pharmacies, err := pharmacyRepo.ListPharmacies(gctx, 0, 0)
		if err != nil {
			return fmt.Errorf("failed to load pharmacies: %w", err)
		}
		snap.pharmacies = pharmacies
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// describePeriod resolves the selected pharmacy's name for headings. A
// pharmacy that does not exist yields ErrNotFound.
func describePeriod(f domain.RecordFilter, pharmacies []domain.Pharmacy) (domain.PeriodDescriptor, error) {
	p := domain.PeriodDescriptor{PharmacyID: f.PharmacyID, Year: f.Year, Month: f.Month}
	if f.PharmacyID == nil {
		return p, nil
	}
	for _, ph := range pharmacies {
		if ph.PharmacyID == *f.PharmacyID {
			p.PharmacyName = ph.Name
			return p, nil
		}
	}
	return p, fmt.Errorf("pharmacy %s: %w", *f.PharmacyID, apperrors.ErrNotFound)
}

func (s *dashboardService) GetDashboard(ctx context.Context, q domain.DashboardQuery) (*domain.Dashboard, error) {
	if err := q.Filter.Validate(); err != nil {
		return nil, err
	}
	if q.Granularity == "" {
		q.Granularity = domain.GranularityDay
	}
	if !q.Granularity.IsValid() {
		return nil, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, q.Granularity)
	}

	// Everything is loaded so the filter options and the prior month stay visible.
	snap, err := loadSnapshot(ctx, s.saleRepo, s.expenseRepo, s.pharmacyRepo, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load dashboard data")
		return nil, err
	}

	f := q.Filter
	period, err := describePeriod(f, snap.pharmacies)
	if err != nil {
		return nil, err
	}

	sales := analytics.FilterSales(snap.sales, f)
	expenses := analytics.FilterExpenses(snap.expenses, f)
	years, months := analytics.AvailableYearsMonths(snap.sales, snap.expenses)

	d := &domain.Dashboard{
		Period:         period,
		Empty:          len(sales) == 0 && len(expenses) == 0,
		Summary:        analytics.Summarize(sales, expenses),
		Breakdown:      analytics.PharmacyBreakdown(sales, expenses),
		Granularity:    q.Granularity,
		SalesTrend:     analytics.SalesTrend(sales, q.Granularity, q.WeekOfMonth),
		ExpensesTrend:  analytics.ExpensesTrend(expenses, q.Granularity, q.WeekOfMonth),
		Averages:       analytics.SalesAverages(sales),
		TopPharmacy:    analytics.TopPharmacy(sales),
		ExpenseSummary: analytics.SummarizeExpenses(expenses, topExpenseCategories),
		Options: domain.FilterOptions{
			Pharmacies: snap.pharmacies,
			Years:      years,
			Months:     months,
		},
	}

	comparison, err := analytics.CompareMonths(snap.sales, snap.expenses, f)
	switch {
	case errors.Is(err, apperrors.ErrComparisonNotApplicable):
		d.ComparisonNote = err.Error()
	case err != nil:
		return nil, err
	default:
		d.Comparison = comparison
	}

	projection, err := analytics.ProjectMonth(snap.sales, f)
	switch {
	case errors.Is(err, apperrors.ErrProjectionNotApplicable):
		d.ProjectionNote = err.Error()
	case err != nil:
		return nil, err
	default:
		d.Projection = projection
	}

	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("sales", len(sales)),
		slog.Int("expenses", len(expenses)),
		slog.Bool("empty", d.Empty))
	return d, nil
}
