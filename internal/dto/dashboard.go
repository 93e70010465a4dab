package dto

import (
	"strconv"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/shopspring/decimal"
)

// DashboardParams defines the dashboard query parameters.
type DashboardParams struct {
	FilterParams
	Granularity string `form:"granularity,default=day" binding:"omitempty,oneof=day week month"`
	WeekOfMonth *int   `form:"weekOfMonth" binding:"omitempty,min=1,max=5"`
}

// ToDashboardQuery converts the query parameters to a domain query.
func (p DashboardParams) ToDashboardQuery() domain.DashboardQuery {
	g := domain.Granularity(p.Granularity)
	if g == "" {
		g = domain.GranularityDay
	}
	return domain.DashboardQuery{
		Filter:      p.ToRecordFilter(),
		Granularity: g,
		WeekOfMonth: p.WeekOfMonth,
	}
}

type PeriodResponse struct {
	PharmacyID   *string `json:"pharmacyID,omitempty"`
	PharmacyName string  `json:"pharmacyName,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Month        *int    `json:"month,omitempty"`
	Label        string  `json:"label"`
}

type ComparisonResponse struct {
	Applicable bool                    `json:"applicable"`
	Reason     string                  `json:"reason,omitempty"`
	Label      string                  `json:"label,omitempty"` // "vs Febrero 2025"
	Data       *domain.MonthComparison `json:"data,omitempty"`
}

type ProjectionResponse struct {
	Applicable bool               `json:"applicable"`
	Reason     string             `json:"reason,omitempty"`
	Data       *domain.Projection `json:"data,omitempty"`
}

// TrendPoint is one labelled bucket of a trend series.
type TrendPoint struct {
	Label string          `json:"label"`
	Start time.Time       `json:"start"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}

type TrendResponse struct {
	Granularity domain.Granularity `json:"granularity"`
	Sales       []TrendPoint       `json:"sales"`
	Expenses    []TrendPoint       `json:"expenses"`
}

// DashboardResponse is the dashboard view model: engine outputs plus display labels.
type DashboardResponse struct {
	Period         PeriodResponse                `json:"period"`
	Empty          bool                          `json:"empty"`
	Summary        domain.FinancialSummary       `json:"summary"`
	Comparison     ComparisonResponse            `json:"comparison"`
	Breakdown      []domain.PharmacyBreakdownRow `json:"breakdown"`
	Trend          TrendResponse                 `json:"trend"`
	Projection     ProjectionResponse            `json:"projection"`
	Averages       domain.Averages               `json:"averages"`
	TopPharmacy    *domain.AggregateRow          `json:"topPharmacy,omitempty"`
	ExpenseSummary domain.ExpenseSummary         `json:"expenseSummary"`
	Options        FilterOptionsResponse         `json:"options"`
}

type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type FilterOptionsResponse struct {
	Pharmacies []PharmacyResponse `json:"pharmacies"`
	Years      []int              `json:"years"`
	Months     []MonthOption      `json:"months"`
}

func toTrendPoints(rows []domain.AggregateRow, labeler locale.Labeler) []TrendPoint {
	points := make([]TrendPoint, 0, len(rows))
	for _, r := range rows {
		if r.Period == nil {
			continue
		}
		points = append(points, TrendPoint{
			Label: labeler.PeriodLabel(*r.Period),
			Start: r.Period.Start,
			Total: r.Total,
		})
	}
	return points
}

// ToDashboardResponse attaches labels to a computed dashboard.
func ToDashboardResponse(d *domain.Dashboard, labeler locale.Labeler) DashboardResponse {
	res := DashboardResponse{
		Period: PeriodResponse{
			PharmacyID:   d.Period.PharmacyID,
			PharmacyName: d.Period.PharmacyName,
			Year:         d.Period.Year,
			Month:        d.Period.Month,
			Label:        locale.PeriodTitle(d.Period),
		},
		Empty:     d.Empty,
		Summary:   d.Summary,
		Breakdown: d.Breakdown,
		Trend: TrendResponse{
			Granularity: d.Granularity,
			Sales:       toTrendPoints(d.SalesTrend, labeler),
			Expenses:    toTrendPoints(d.ExpensesTrend, labeler),
		},
		Averages:       d.Averages,
		TopPharmacy:    d.TopPharmacy,
		ExpenseSummary: d.ExpenseSummary,
		Options: FilterOptionsResponse{
			Pharmacies: ToListPharmacyResponse(d.Options.Pharmacies),
			Years:      d.Options.Years,
			Months:     make([]MonthOption, len(d.Options.Months)),
		},
	}
	for i, m := range d.Options.Months {
		res.Options.Months[i] = MonthOption{Value: m, Label: locale.MonthName(m)}
	}

	if d.Comparison != nil {
		res.Comparison = ComparisonResponse{
			Applicable: true,
			Label:      "vs " + locale.MonthName(d.Comparison.PriorMonth) + " " + strconv.Itoa(d.Comparison.PriorYear),
			Data:       d.Comparison,
		}
	} else {
		res.Comparison = ComparisonResponse{Reason: d.ComparisonNote}
	}

	if d.Projection != nil {
		res.Projection = ProjectionResponse{Applicable: true, Data: d.Projection}
	} else {
		res.Projection = ProjectionResponse{Reason: d.ProjectionNote}
	}
	return res
}
