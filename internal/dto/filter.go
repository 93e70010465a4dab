package dto

import (
	"strings"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// FilterParams are the pharmacy/year/month query parameters shared by the
// listing, dashboard and report endpoints.
type FilterParams struct {
	PharmacyID string `form:"pharmacyID" binding:"omitempty,uuid"`
	Year       *int   `form:"year" binding:"omitempty,min=1,max=9999"`
	Month      *int   `form:"month" binding:"omitempty,min=1,max=12"`
}

// ToRecordFilter converts the query parameters to a domain filter.
func (p FilterParams) ToRecordFilter() domain.RecordFilter {
	f := domain.RecordFilter{Year: p.Year, Month: p.Month}
	if id := strings.TrimSpace(p.PharmacyID); id != "" {
		f.PharmacyID = &id
	}
	return f
}

// ListRecordsParams defines query parameters for listing sales or expenses.
type ListRecordsParams struct {
	FilterParams
	Search    string  `form:"search"`
	Category  string  `form:"category"` // Expenses only
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ToRecordQuery converts the query parameters to a domain query.
func (p ListRecordsParams) ToRecordQuery() domain.RecordQuery {
	return domain.RecordQuery{
		Filter:    p.ToRecordFilter(),
		Search:    strings.TrimSpace(p.Search),
		Category:  domain.ExpenseCategory(p.Category),
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}
}
