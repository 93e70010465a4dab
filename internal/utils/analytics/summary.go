package analytics

import (
	"sort"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize computes the headline KPIs of an already filtered record set.
func Summarize(sales []domain.Sale, expenses []domain.Expense) domain.FinancialSummary {
	salesTotal := TotalSales(sales)
	expensesTotal := TotalExpenses(expenses)
	profit := salesTotal.Sub(expensesTotal)
	return domain.FinancialSummary{
		SalesTotal:    salesTotal,
		ExpensesTotal: expensesTotal,
		Profit:        profit,
		MarginPercent: Percent(profit, salesTotal),
	}
}

// PharmacyBreakdown joins per-pharmacy sales and expenses. A pharmacy that
// appears on only one side gets zero on the other.
func PharmacyBreakdown(sales []domain.Sale, expenses []domain.Expense) []domain.PharmacyBreakdownRow {
	salesRows := byPharmacy(saleEntries(sales))
	expenseRows := byPharmacy(expenseEntries(expenses))

	index := make(map[string]int)
	out := make([]domain.PharmacyBreakdownRow, 0, len(salesRows))
	for _, r := range salesRows {
		index[r.PharmacyID] = len(out)
		out = append(out, domain.PharmacyBreakdownRow{
			PharmacyID:   r.PharmacyID,
			PharmacyName: r.PharmacyName,
			Sales:        r.Total,
			Expenses:     decimal.Zero,
		})
	}
	for _, r := range expenseRows {
		i, ok := index[r.PharmacyID]
		if !ok {
			i = len(out)
			index[r.PharmacyID] = i
			out = append(out, domain.PharmacyBreakdownRow{
				PharmacyID:   r.PharmacyID,
				PharmacyName: r.PharmacyName,
				Sales:        decimal.Zero,
			})
		}
		out[i].Expenses = r.Total
	}
	for i := range out {
		out[i].Profit = out[i].Sales.Sub(out[i].Expenses)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PharmacyName != out[j].PharmacyName {
			return out[i].PharmacyName < out[j].PharmacyName
		}
		return out[i].PharmacyID < out[j].PharmacyID
	})
	return out
}

// TopPharmacy returns the pharmacy with the highest sales total, or nil when
// there are no sales. Ties go to the first pharmacy by name.
func TopPharmacy(sales []domain.Sale) *domain.AggregateRow {
	rows := byPharmacy(saleEntries(sales))
	if len(rows) == 0 {
		return nil
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Total.GreaterThan(best.Total) {
			best = r
		}
	}
	return &best
}

// SalesAverages returns the mean of per-day, per-ISO-week and per-month sales
// sums over the periods that have records.
func SalesAverages(sales []domain.Sale) domain.Averages {
	entries := saleEntries(sales)
	return domain.Averages{
		Daily:   meanTotal(byPeriod(entries, domain.GranularityDay)),
		Weekly:  meanTotal(byPeriod(entries, domain.GranularityWeek)),
		Monthly: meanTotal(byPeriod(entries, domain.GranularityMonth)),
	}
}

func meanTotal(rows []domain.AggregateRow) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	return total.DivRound(decimal.NewFromInt(int64(len(rows))), 2)
}

// SummarizeExpenses splits expenses into fixed and variable totals and ranks
// categories by total. topN limits TopCategories.
func SummarizeExpenses(expenses []domain.Expense, topN int) domain.ExpenseSummary {
	summary := domain.ExpenseSummary{
		Fixed:    decimal.Zero,
		Variable: decimal.Zero,
	}
	byCategory := make(map[domain.ExpenseCategory]decimal.Decimal)
	for _, e := range expenses {
		switch e.ExpenseType {
		case domain.ExpenseFixed:
			summary.Fixed = summary.Fixed.Add(e.Amount)
		case domain.ExpenseVariable:
			summary.Variable = summary.Variable.Add(e.Amount)
		}
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	summary.ByCategory = make([]domain.CategoryTotal, 0, len(byCategory))
	for c, total := range byCategory {
		summary.ByCategory = append(summary.ByCategory, domain.CategoryTotal{Category: c, Total: total})
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	n := min(max(topN, 0), len(summary.ByCategory))
	summary.TopCategories = summary.ByCategory[:n]
	return summary
}
