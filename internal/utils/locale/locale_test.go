package locale_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", locale.FormatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", locale.FormatMoney(decimal.Zero))
	assert.Equal(t, "$1,000,000.00", locale.FormatMoney(decimal.NewFromInt(1000000)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "83.33%", locale.FormatPercent(decimal.RequireFromString("83.33")))
	assert.Equal(t, "0.00%", locale.FormatPercent(decimal.Zero))
}

func TestPeriodLabel_WeekYearModes(t *testing.T) {
	key := analytics.KeyFor(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), domain.GranularityWeek)

	assert.Equal(t, "Semana 1 / 2025", locale.Labeler{}.PeriodLabel(key))
	assert.Equal(t, "Semana 1 / 2024", locale.Labeler{CalendarYearWeeks: true}.PeriodLabel(key))
}

func TestPeriodLabel_DayAndMonth(t *testing.T) {
	l := locale.Labeler{}
	d := analytics.KeyFor(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), domain.GranularityDay)
	assert.Equal(t, "Lunes 03/03", l.PeriodLabel(d))

	m := analytics.KeyFor(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), domain.GranularityMonth)
	assert.Equal(t, "Marzo 2025", l.PeriodLabel(m))
}

func TestPeriodTitle(t *testing.T) {
	year, month := 2025, 3
	assert.Equal(t, "Todos los años", locale.PeriodTitle(domain.PeriodDescriptor{}))
	assert.Equal(t, "Año 2025", locale.PeriodTitle(domain.PeriodDescriptor{Year: &year}))
	assert.Equal(t, "Centro - Marzo 2025", locale.PeriodTitle(domain.PeriodDescriptor{
		PharmacyName: "Centro", Year: &year, Month: &month,
	}))
	assert.Equal(t, "Marzo (todos los años)", locale.PeriodTitle(domain.PeriodDescriptor{Month: &month}))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Enero", locale.MonthName(1))
	assert.Equal(t, "Diciembre", locale.MonthName(12))
	assert.Equal(t, "", locale.MonthName(13))
}
