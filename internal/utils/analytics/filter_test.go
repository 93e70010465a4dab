package analytics_test

import (
	"testing"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []domain.Sale {
	return []domain.Sale{
		sale("p1", "Centro", "100", day(2024, 3, 5)),
		sale("p2", "Norte", "50", day(2024, 3, 6)),
		sale("p1", "Centro", "70", day(2025, 3, 1)),
		sale("p1", "Centro", "30", day(2025, 4, 2)),
	}
}

func TestFilterSales_EmptyFilterReturnsAll(t *testing.T) {
	in := filterFixture()
	out := analytics.FilterSales(in, domain.RecordFilter{})
	assert.Equal(t, in, out)
}

func TestFilterSales_MonthWithoutYearSpansYears(t *testing.T) {
	out := analytics.FilterSales(filterFixture(), domain.RecordFilter{Month: intPtr(3)})
	assert.Len(t, out, 3)
	assert.True(t, analytics.TotalSales(out).Equal(dec("220")))
}

func TestFilterSales_AllDimensions(t *testing.T) {
	out := analytics.FilterSales(filterFixture(), domain.RecordFilter{
		PharmacyID: strPtr("p1"),
		Year:       intPtr(2025),
		Month:      intPtr(3),
	})
	assert.Len(t, out, 1)
	assert.True(t, out[0].Amount.Equal(dec("70")))
}

func TestFilterSales_IsCommutativeAndPure(t *testing.T) {
	in := filterFixture()
	snapshot := append([]domain.Sale(nil), in...)

	byPharmacyThenYear := analytics.FilterSales(
		analytics.FilterSales(in, domain.RecordFilter{PharmacyID: strPtr("p1")}),
		domain.RecordFilter{Year: intPtr(2024)})
	byYearThenPharmacy := analytics.FilterSales(
		analytics.FilterSales(in, domain.RecordFilter{Year: intPtr(2024)}),
		domain.RecordFilter{PharmacyID: strPtr("p1")})

	assert.Equal(t, byPharmacyThenYear, byYearThenPharmacy)
	assert.Equal(t, snapshot, in)
}

func TestFilterSales_NoMatchesIsEmptyNotNil(t *testing.T) {
	out := analytics.FilterSales(filterFixture(), domain.RecordFilter{Year: intPtr(1999)})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilterExpenses(t *testing.T) {
	in := []domain.Expense{
		expense("p1", "Centro", "40", day(2025, 3, 2), domain.ExpenseFixed, domain.CategoryRent),
		expense("p2", "Norte", "10", day(2025, 3, 2), domain.ExpenseVariable, domain.CategoryOther),
	}
	out := analytics.FilterExpenses(in, domain.RecordFilter{PharmacyID: strPtr("p2")})
	assert.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].PharmacyID)
}
