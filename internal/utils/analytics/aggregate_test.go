package analytics_test

import (
	"testing"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSales_ByPharmacy(t *testing.T) {
	sales := []domain.Sale{
		sale("p2", "Norte", "0.10", day(2025, 3, 1)),
		sale("p1", "Centro", "100", day(2025, 3, 1)),
		sale("p2", "Norte", "0.20", day(2025, 3, 2)),
	}
	rows, err := analytics.AggregateSales(sales, domain.GroupByPharmacy)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Centro", rows[0].PharmacyName)
	assert.Equal(t, "Norte", rows[1].PharmacyName)
	// exact decimal arithmetic
	assert.Equal(t, "0.3", rows[1].Total.String())
}

func TestAggregateSales_NoZeroFill(t *testing.T) {
	sales := []domain.Sale{
		sale("p1", "Centro", "10", day(2025, 3, 1)),
		sale("p1", "Centro", "20", day(2025, 3, 5)),
	}
	rows, err := analytics.AggregateSales(sales, domain.GroupByDay)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Period.Day)
	assert.Equal(t, 5, rows[1].Period.Day)
}

func TestAggregateSales_ISOWeekAcrossNewYear(t *testing.T) {
	sales := []domain.Sale{
		sale("p1", "Centro", "10", day(2024, 12, 30)),
		sale("p1", "Centro", "15", day(2025, 1, 2)),
		sale("p1", "Centro", "5", day(2024, 12, 29)),
	}
	rows, err := analytics.AggregateSales(sales, domain.GroupByWeek)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2024, rows[0].Period.Year)
	assert.Equal(t, 52, rows[0].Period.Week)
	assert.Equal(t, 2025, rows[1].Period.Year)
	assert.Equal(t, 1, rows[1].Period.Week)
	assert.True(t, rows[1].Total.Equal(dec("25")))
}

func TestAggregateSales_ConservesTotal(t *testing.T) {
	sales := []domain.Sale{
		sale("p1", "Centro", "10.55", day(2025, 1, 31)),
		sale("p2", "Norte", "3.45", day(2025, 2, 1)),
		sale("p1", "Centro", "7", day(2025, 2, 14)),
	}
	total := analytics.TotalSales(sales)
	for _, by := range []domain.GroupBy{domain.GroupByPharmacy, domain.GroupByDay, domain.GroupByWeek, domain.GroupByMonth} {
		rows, err := analytics.AggregateSales(sales, by)
		require.NoError(t, err)
		sum := dec("0")
		for _, r := range rows {
			sum = sum.Add(r.Total)
		}
		assert.True(t, total.Equal(sum), "grouping %s", by)
	}
}

func TestAggregateSales_EmptyInput(t *testing.T) {
	rows, err := analytics.AggregateSales(nil, domain.GroupByMonth)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAggregateSales_UnknownGrouping(t *testing.T) {
	_, err := analytics.AggregateSales(nil, domain.GroupBy("quarter"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAggregateExpenses_ByMonth(t *testing.T) {
	expenses := []domain.Expense{
		expense("p1", "Centro", "40", day(2025, 2, 10), domain.ExpenseFixed, domain.CategoryRent),
		expense("p1", "Centro", "60", day(2025, 1, 10), domain.ExpenseFixed, domain.CategoryRent),
	}
	rows, err := analytics.AggregateExpenses(expenses, domain.GroupByMonth)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Period.Month)
	assert.True(t, rows[0].Total.Equal(dec("60")))
}
