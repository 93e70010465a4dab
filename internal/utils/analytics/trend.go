package analytics

import (
	"sort"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// SalesTrend groups sales into periods of granularity g. For daily trends a
// non-nil weekOfMonth keeps only the days in that seven-day block.
func SalesTrend(sales []domain.Sale, g domain.Granularity, weekOfMonth *int) []domain.AggregateRow {
	entries := saleEntries(sales)
	if g == domain.GranularityDay && weekOfMonth != nil {
		entries = inWeekOfMonth(entries, *weekOfMonth)
	}
	return byPeriod(entries, g)
}

// ExpensesTrend is SalesTrend for expenses.
func ExpensesTrend(expenses []domain.Expense, g domain.Granularity, weekOfMonth *int) []domain.AggregateRow {
	entries := expenseEntries(expenses)
	if g == domain.GranularityDay && weekOfMonth != nil {
		entries = inWeekOfMonth(entries, *weekOfMonth)
	}
	return byPeriod(entries, g)
}

func inWeekOfMonth(entries []entry, week int) []entry {
	out := make([]entry, 0, len(entries))
	for _, e := range entries {
		if WeekOfMonth(e.date.Day()) == week {
			out = append(out, e)
		}
	}
	return out
}

// AvailableYearsMonths lists the distinct years and month numbers that appear
// in either record set, ascending.
func AvailableYearsMonths(sales []domain.Sale, expenses []domain.Expense) ([]int, []int) {
	years := make(map[int]struct{})
	months := make(map[int]struct{})
	for _, e := range append(saleEntries(sales), expenseEntries(expenses)...) {
		years[e.date.Year()] = struct{}{}
		months[int(e.date.Month())] = struct{}{}
	}
	return sortedKeys(years), sortedKeys(months)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
