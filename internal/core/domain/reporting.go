package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregateRow is one group of an aggregation: a pharmacy, a period, or both.
type AggregateRow struct {
	PharmacyID   string          `json:"pharmacyID,omitempty"`
	PharmacyName string          `json:"pharmacyName,omitempty"`
	Period       *PeriodKey      `json:"period,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

// Delta compares a value against its prior-period counterpart.
type Delta struct {
	Current  decimal.Decimal `json:"current"`
	Prior    decimal.Decimal `json:"prior"`
	Absolute decimal.Decimal `json:"absolute"`
	Percent  decimal.Decimal `json:"percent"` // 0 when Prior is 0
}

// MonthComparison holds the deltas between a month and the month before it.
type MonthComparison struct {
	Year       int   `json:"year"`
	Month      int   `json:"month"`
	PriorYear  int   `json:"priorYear"`
	PriorMonth int   `json:"priorMonth"`
	Sales      Delta `json:"sales"`
	Expenses   Delta `json:"expenses"`
	Profit     Delta `json:"profit"`
}

// FinancialSummary holds the headline KPIs for a filtered record set.
type FinancialSummary struct {
	SalesTotal    decimal.Decimal `json:"salesTotal"`
	ExpensesTotal decimal.Decimal `json:"expensesTotal"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"marginPercent"` // 0 when SalesTotal is 0
}

// PharmacyBreakdownRow is the per-pharmacy sales, expenses and profit.
type PharmacyBreakdownRow struct {
	PharmacyID   string          `json:"pharmacyID"`
	PharmacyName string          `json:"pharmacyName"`
	Sales        decimal.Decimal `json:"sales"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
}

// PharmacyProjection is the month-end estimate for a single pharmacy.
type PharmacyProjection struct {
	PharmacyID         string          `json:"pharmacyID"`
	PharmacyName       string          `json:"pharmacyName"`
	Actual             decimal.Decimal `json:"actual"`
	DaysRecorded       int             `json:"daysRecorded"`
	LastRecordedDay    int             `json:"lastRecordedDay"`
	DailyAverage       decimal.Decimal `json:"dailyAverage"`
	RemainingDays      int             `json:"remainingDays"`
	ProjectedRemainder decimal.Decimal `json:"projectedRemainder"`
	ProjectedTotal     decimal.Decimal `json:"projectedTotal"`
}

// Projection is the month-end sales estimate across all pharmacies with data.
type Projection struct {
	Year               int                  `json:"year"`
	Month              int                  `json:"month"`
	DaysInMonth        int                  `json:"daysInMonth"`
	Actual             decimal.Decimal      `json:"actual"`
	ProjectedRemainder decimal.Decimal      `json:"projectedRemainder"`
	ProjectedTotal     decimal.Decimal      `json:"projectedTotal"`
	ByPharmacy         []PharmacyProjection `json:"byPharmacy"`
}

// Averages are the means of per-period sums over the periods present.
type Averages struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseSummary splits expenses by type and category.
type ExpenseSummary struct {
	Fixed         decimal.Decimal `json:"fixed"`
	Variable      decimal.Decimal `json:"variable"`
	ByCategory    []CategoryTotal `json:"byCategory"`
	TopCategories []CategoryTotal `json:"topCategories"`
}

// FilterOptions lists the selector values present in the data.
type FilterOptions struct {
	Pharmacies []Pharmacy `json:"pharmacies"`
	Years      []int      `json:"years"`
	Months     []int      `json:"months"`
}

// DashboardQuery is the operator's current selection.
type DashboardQuery struct {
	Filter      RecordFilter
	Granularity Granularity
	// WeekOfMonth narrows a daily trend to days ((day-1)/7)+1 == WeekOfMonth.
	WeekOfMonth *int
}

// PeriodDescriptor describes the selected period for headings and labels.
type PeriodDescriptor struct {
	PharmacyID   *string `json:"pharmacyID,omitempty"`
	PharmacyName string  `json:"pharmacyName,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Month        *int    `json:"month,omitempty"`
}

// Dashboard is everything the dashboard view needs for one selection.
type Dashboard struct {
	Period         PeriodDescriptor       `json:"period"`
	Empty          bool                   `json:"empty"`
	Summary        FinancialSummary       `json:"summary"`
	Comparison     *MonthComparison       `json:"comparison,omitempty"`
	ComparisonNote string                 `json:"comparisonNote,omitempty"`
	Breakdown      []PharmacyBreakdownRow `json:"breakdown"`
	Granularity    Granularity            `json:"granularity"`
	SalesTrend     []AggregateRow         `json:"salesTrend"`
	ExpensesTrend  []AggregateRow         `json:"expensesTrend"`
	Projection     *Projection            `json:"projection,omitempty"`
	ProjectionNote string                 `json:"projectionNote,omitempty"`
	Averages       Averages               `json:"averages"`
	TopPharmacy    *AggregateRow          `json:"topPharmacy,omitempty"`
	ExpenseSummary ExpenseSummary         `json:"expenseSummary"`
	Options        FilterOptions          `json:"options"`
}

// ReportData is the snapshot rendered by the document exporters.
type ReportData struct {
	Period         PeriodDescriptor
	GeneratedAt    time.Time
	Summary        FinancialSummary
	Breakdown      []PharmacyBreakdownRow
	ExpenseSummary ExpenseSummary
	Sales          []Sale
	Expenses       []Expense
}

// ReportFormat selects one of the exported documents.
type ReportFormat string

const (
	ReportFinancialPDF   ReportFormat = "financial.pdf"
	ReportSummaryPDF     ReportFormat = "summary.pdf"
	ReportExpensesPDF    ReportFormat = "expenses.pdf"
	ReportSalesCSV       ReportFormat = "sales.csv"
	ReportExpensesCSV    ReportFormat = "expenses.csv"
	ReportPharmaciesXLSX ReportFormat = "pharmacies.xlsx"
)

// ReportFormats lists every supported format.
var ReportFormats = []ReportFormat{
	ReportFinancialPDF,
	ReportSummaryPDF,
	ReportExpensesPDF,
	ReportSalesCSV,
	ReportExpensesCSV,
	ReportPharmaciesXLSX,
}

func (f ReportFormat) IsValid() bool {
	for _, known := range ReportFormats {
		if f == known {
			return true
		}
	}
	return false
}

// ContentType is the MIME type of the rendered document.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportSalesCSV, ReportExpensesCSV:
		return "text/csv; charset=utf-8"
	case ReportPharmaciesXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}
