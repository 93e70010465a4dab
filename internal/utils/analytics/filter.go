package analytics

import (
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

func matches(pharmacyID string, date time.Time, f domain.RecordFilter) bool {
	if f.PharmacyID != nil && pharmacyID != *f.PharmacyID {
		return false
	}
	if f.Year != nil && date.Year() != *f.Year {
		return false
	}
	// A month without a year matches that month in every year.
	if f.Month != nil && int(date.Month()) != *f.Month {
		return false
	}
	return true
}

// FilterSales returns the sales matching every set dimension of f, in input order.
func FilterSales(sales []domain.Sale, f domain.RecordFilter) []domain.Sale {
	out := make([]domain.Sale, 0, len(sales))
	for _, s := range sales {
		if matches(s.PharmacyID, s.Date, f) {
			out = append(out, s)
		}
	}
	return out
}

// FilterExpenses returns the expenses matching every set dimension of f, in input order.
func FilterExpenses(expenses []domain.Expense, f domain.RecordFilter) []domain.Expense {
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if matches(e.PharmacyID, e.Date, f) {
			out = append(out, e)
		}
	}
	return out
}
