package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// entry is the common shape of sales and expenses for aggregation.
type entry struct {
	pharmacyID   string
	pharmacyName string
	date         time.Time
	amount       decimal.Decimal
}

func saleEntries(sales []domain.Sale) []entry {
	out := make([]entry, len(sales))
	for i, s := range sales {
		out[i] = entry{pharmacyID: s.PharmacyID, pharmacyName: s.PharmacyName, date: s.Date, amount: s.Amount}
	}
	return out
}

func expenseEntries(expenses []domain.Expense) []entry {
	out := make([]entry, len(expenses))
	for i, e := range expenses {
		out[i] = entry{pharmacyID: e.PharmacyID, pharmacyName: e.PharmacyName, date: e.Date, amount: e.Amount}
	}
	return out
}

// TotalSales sums the amounts of sales.
func TotalSales(sales []domain.Sale) decimal.Decimal {
	return sum(saleEntries(sales))
}

// TotalExpenses sums the amounts of expenses.
func TotalExpenses(expenses []domain.Expense) decimal.Decimal {
	return sum(expenseEntries(expenses))
}

func sum(entries []entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.amount)
	}
	return total
}

// AggregateSales groups sales by the given key and sums each group.
// Only keys present in the input produce rows; rows are ordered by key ascending.
func AggregateSales(sales []domain.Sale, by domain.GroupBy) ([]domain.AggregateRow, error) {
	return aggregate(saleEntries(sales), by)
}

// AggregateExpenses groups expenses by the given key and sums each group.
func AggregateExpenses(expenses []domain.Expense, by domain.GroupBy) ([]domain.AggregateRow, error) {
	return aggregate(expenseEntries(expenses), by)
}

func aggregate(entries []entry, by domain.GroupBy) ([]domain.AggregateRow, error) {
	switch by {
	case domain.GroupByPharmacy:
		return byPharmacy(entries), nil
	case domain.GroupByDay:
		return byPeriod(entries, domain.GranularityDay), nil
	case domain.GroupByWeek:
		return byPeriod(entries, domain.GranularityWeek), nil
	case domain.GroupByMonth:
		return byPeriod(entries, domain.GranularityMonth), nil
	default:
		return nil, fmt.Errorf("%w: unknown grouping %q", apperrors.ErrValidation, by)
	}
}

func byPharmacy(entries []entry) []domain.AggregateRow {
	groups := make(map[string]*domain.AggregateRow)
	for _, e := range entries {
		row, ok := groups[e.pharmacyID]
		if !ok {
			row = &domain.AggregateRow{PharmacyID: e.pharmacyID, PharmacyName: e.pharmacyName, Total: decimal.Zero}
			groups[e.pharmacyID] = row
		}
		row.Total = row.Total.Add(e.amount)
	}

	rows := make([]domain.AggregateRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PharmacyName != rows[j].PharmacyName {
			return rows[i].PharmacyName < rows[j].PharmacyName
		}
		return rows[i].PharmacyID < rows[j].PharmacyID
	})
	return rows
}

func byPeriod(entries []entry, g domain.Granularity) []domain.AggregateRow {
	groups := make(map[time.Time]*domain.AggregateRow)
	for _, e := range entries {
		key := KeyFor(e.date, g)
		row, ok := groups[key.Start]
		if !ok {
			k := key
			row = &domain.AggregateRow{Period: &k, Total: decimal.Zero}
			groups[key.Start] = row
		}
		row.Total = row.Total.Add(e.amount)
	}

	rows := make([]domain.AggregateRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Period.Before(*rows[j].Period)
	})
	return rows
}
