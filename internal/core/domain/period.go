package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
)

// Granularity is the time bucket used for trend series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// GroupBy selects the key used when aggregating records.
type GroupBy string

const (
	GroupByPharmacy GroupBy = "pharmacy"
	GroupByDay      GroupBy = "day"
	GroupByWeek     GroupBy = "week"
	GroupByMonth    GroupBy = "month"
)

// PeriodKey identifies one time bucket. It is derived from record dates and never persisted.
type PeriodKey struct {
	Granularity Granularity `json:"granularity"`
	Year        int         `json:"year"` // ISO week-numbering year for weekly keys
	Month       int         `json:"month,omitempty"`
	Week        int         `json:"week,omitempty"` // ISO 8601 week number
	Day         int         `json:"day,omitempty"`
	Start       time.Time   `json:"start"` // First date of the bucket; Monday for weeks
}

// Before orders keys chronologically.
func (k PeriodKey) Before(other PeriodKey) bool {
	return k.Start.Before(other.Start)
}

// RecordFilter restricts a record set along pharmacy, year and month.
// A nil field means no restriction on that dimension.
type RecordFilter struct {
	PharmacyID *string `json:"pharmacyID,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Month      *int    `json:"month,omitempty"`
}

// HasYearMonth reports whether both year and month are fixed, which is the
// precondition for month comparisons and projections.
func (f RecordFilter) HasYearMonth() bool {
	return f.Year != nil && f.Month != nil
}

func (f RecordFilter) Validate() error {
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		return fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if f.Year != nil && (*f.Year < 1 || *f.Year > 9999) {
		return fmt.Errorf("%w: year is out of range", apperrors.ErrValidation)
	}
	return nil
}

// RecordQuery selects a page of sales or expenses for listing screens.
type RecordQuery struct {
	Filter RecordFilter
	// Search matches the pharmacy name for sales and the description for expenses.
	Search    string
	Category  ExpenseCategory // Expenses only; empty means any
	Limit     int
	NextToken *string
}
