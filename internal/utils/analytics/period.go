// Package analytics holds the pure aggregation, comparison and projection
// functions behind the dashboard and reports. Every function works on
// in-memory record slices and never mutates its input.
package analytics

import (
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// Classification is the set of calendar buckets a date belongs to.
type Classification struct {
	Year        int
	Month       int
	Day         int
	ISOYear     int // ISO 8601 week-numbering year, may differ from Year near Jan 1
	ISOWeek     int
	WeekOfMonth int // ((Day-1)/7)+1
}

// Classify derives the period buckets for date.
func Classify(date time.Time) Classification {
	isoYear, isoWeek := date.ISOWeek()
	return Classification{
		Year:        date.Year(),
		Month:       int(date.Month()),
		Day:         date.Day(),
		ISOYear:     isoYear,
		ISOWeek:     isoWeek,
		WeekOfMonth: WeekOfMonth(date.Day()),
	}
}

// DaysInMonth returns the number of days in month of year under the Gregorian calendar.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PriorMonth returns the calendar month before (year, month).
func PriorMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// WeekOfMonth returns the 1-based seven-day block of the month that day falls in.
func WeekOfMonth(day int) int {
	return (day-1)/7 + 1
}

// WeekStart returns the Monday of the ISO week containing date.
func WeekStart(date time.Time) time.Time {
	d := domain.DateOnly(date)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// KeyFor returns the period key of date at granularity g.
func KeyFor(date time.Time, g domain.Granularity) domain.PeriodKey {
	c := Classify(date)
	switch g {
	case domain.GranularityWeek:
		return domain.PeriodKey{
			Granularity: g,
			Year:        c.ISOYear,
			Week:        c.ISOWeek,
			Start:       WeekStart(date),
		}
	case domain.GranularityMonth:
		return domain.PeriodKey{
			Granularity: g,
			Year:        c.Year,
			Month:       c.Month,
			Start:       time.Date(c.Year, time.Month(c.Month), 1, 0, 0, 0, 0, time.UTC),
		}
	default:
		return domain.PeriodKey{
			Granularity: domain.GranularityDay,
			Year:        c.Year,
			Month:       c.Month,
			Day:         c.Day,
			Start:       domain.DateOnly(date),
		}
	}
}
