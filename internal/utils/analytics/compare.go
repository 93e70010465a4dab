package analytics

import (
	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent returns part/whole*100 rounded to two places, or 0 when whole is 0.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(whole, 2)
}

// Compare returns the absolute and percentage change from prior to current.
func Compare(current, prior decimal.Decimal) domain.Delta {
	abs := current.Sub(prior)
	return domain.Delta{
		Current:  current,
		Prior:    prior,
		Absolute: abs,
		Percent:  Percent(abs, prior),
	}
}

// CompareMonths compares the month selected by f with the calendar month before it,
// keeping the pharmacy restriction of f. sales and expenses must be unfiltered
// by period so the prior month is visible.
func CompareMonths(sales []domain.Sale, expenses []domain.Expense, f domain.RecordFilter) (*domain.MonthComparison, error) {
	if !f.HasYearMonth() {
		return nil, apperrors.ErrComparisonNotApplicable
	}

	year, month := *f.Year, *f.Month
	priorYear, priorMonth := PriorMonth(year, month)
	prior := domain.RecordFilter{PharmacyID: f.PharmacyID, Year: &priorYear, Month: &priorMonth}

	curSales := TotalSales(FilterSales(sales, f))
	curExpenses := TotalExpenses(FilterExpenses(expenses, f))
	prevSales := TotalSales(FilterSales(sales, prior))
	prevExpenses := TotalExpenses(FilterExpenses(expenses, prior))

	return &domain.MonthComparison{
		Year:       year,
		Month:      month,
		PriorYear:  priorYear,
		PriorMonth: priorMonth,
		Sales:      Compare(curSales, prevSales),
		Expenses:   Compare(curExpenses, prevExpenses),
		Profit:     Compare(curSales.Sub(curExpenses), prevSales.Sub(prevExpenses)),
	}, nil
}
