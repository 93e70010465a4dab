// Package locale renders domain values as Spanish display text. Nothing in
// here feeds back into calculations.
package locale

import (
	"fmt"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayNames = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// Amounts are grouped with commas and a decimal point, as the operators read them.
var printer = message.NewPrinter(language.AmericanEnglish)

// MonthName returns the Spanish name of month (1-12), or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// WeekdayName returns the Spanish name of the weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// FormatMoney renders an amount as "$1,234.50".
func FormatMoney(amount decimal.Decimal) string {
	return "$" + printer.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatPercent renders a percentage with two decimals, e.g. "83.33%".
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// Labeler builds display labels for period keys.
type Labeler struct {
	// CalendarYearWeeks labels ISO weeks with the calendar year of their Monday.
	CalendarYearWeeks bool
}

// PeriodLabel renders a trend bucket, e.g. "Lunes 03/03", "Semana 1 / 2025", "Marzo 2025".
func (l Labeler) PeriodLabel(k domain.PeriodKey) string {
	switch k.Granularity {
	case domain.GranularityWeek:
		year := k.Year
		if l.CalendarYearWeeks {
			year = k.Start.Year()
		}
		return fmt.Sprintf("Semana %d / %d", k.Week, year)
	case domain.GranularityMonth:
		return fmt.Sprintf("%s %d", MonthName(k.Month), k.Year)
	default:
		return fmt.Sprintf("%s %02d/%02d", WeekdayName(k.Start.Weekday()), k.Day, k.Month)
	}
}

// PeriodTitle describes the selected period: "Todos los años", "Año 2025" or
// "Marzo 2025", prefixed with the pharmacy name when one is selected. A month
// without a year reads "Marzo (todos los años)".
func PeriodTitle(p domain.PeriodDescriptor) string {
	var title string
	switch {
	case p.Year != nil && p.Month != nil:
		title = fmt.Sprintf("%s %d", MonthName(*p.Month), *p.Year)
	case p.Year != nil:
		title = fmt.Sprintf("Año %d", *p.Year)
	case p.Month != nil:
		title = fmt.Sprintf("%s (todos los años)", MonthName(*p.Month))
	default:
		title = "Todos los años"
	}
	if p.PharmacyName != "" {
		return p.PharmacyName + " - " + title
	}
	return title
}

// RecordTypeLabel returns the Spanish label of a sale record type.
func RecordTypeLabel(t domain.RecordType) string {
	switch t {
	case domain.RecordDaily:
		return "Diario"
	case domain.RecordWeekly:
		return "Semanal"
	case domain.RecordMonthly:
		return "Mensual"
	}
	return string(t)
}

// ExpenseTypeLabel returns the Spanish label of an expense type.
func ExpenseTypeLabel(t domain.ExpenseType) string {
	switch t {
	case domain.ExpenseFixed:
		return "Fijo"
	case domain.ExpenseVariable:
		return "Variable"
	}
	return string(t)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
