package analytics_test

import (
	"testing"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"github.com/stretchr/testify/assert"
)

func TestClassify_ISOWeekCrossesYearBoundary(t *testing.T) {
	tests := []struct {
		name        string
		date        int
		wantISOYear int
		wantISOWeek int
	}{
		{"monday dec 30", 30, 2025, 1},
		{"tuesday dec 31", 31, 2025, 1},
		{"sunday dec 29", 29, 2024, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := analytics.Classify(day(2024, 12, tt.date))
			assert.Equal(t, 2024, c.Year)
			assert.Equal(t, 12, c.Month)
			assert.Equal(t, tt.wantISOYear, c.ISOYear)
			assert.Equal(t, tt.wantISOWeek, c.ISOWeek)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{1900, 2, 28},
		{2000, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analytics.DaysInMonth(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestPriorMonth(t *testing.T) {
	y, m := analytics.PriorMonth(2025, 1)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 12, m)

	y, m = analytics.PriorMonth(2025, 7)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 6, m)
}

func TestWeekOfMonth(t *testing.T) {
	assert.Equal(t, 1, analytics.WeekOfMonth(1))
	assert.Equal(t, 1, analytics.WeekOfMonth(7))
	assert.Equal(t, 2, analytics.WeekOfMonth(8))
	assert.Equal(t, 5, analytics.WeekOfMonth(31))
}

func TestKeyFor_WeekStartsOnMonday(t *testing.T) {
	key := analytics.KeyFor(day(2025, 1, 1), domain.GranularityWeek)
	assert.Equal(t, 2025, key.Year)
	assert.Equal(t, 1, key.Week)
	assert.Equal(t, day(2024, 12, 30), key.Start)

	month := analytics.KeyFor(day(2025, 3, 17), domain.GranularityMonth)
	assert.Equal(t, day(2025, 3, 1), month.Start)
	assert.Equal(t, 3, month.Month)
}
