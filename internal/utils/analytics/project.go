package analytics

import (
	"sort"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

type pharmacyMonth struct {
	id, name string
	total    decimal.Decimal
	days     map[int]struct{}
	lastDay  int
}

// Project estimates month-end sales for (year, month). Each pharmacy is
// extrapolated from its own daily average over the days it has records for,
// up to the last day of the month. Pharmacies without records in the month
// contribute nothing. Sales outside (year, month) are ignored.
func Project(sales []domain.Sale, year, month int) domain.Projection {
	daysInMonth := DaysInMonth(year, month)
	groups := make(map[string]*pharmacyMonth)
	for _, s := range sales {
		if s.Date.Year() != year || int(s.Date.Month()) != month {
			continue
		}
		g, ok := groups[s.PharmacyID]
		if !ok {
			g = &pharmacyMonth{id: s.PharmacyID, name: s.PharmacyName, total: decimal.Zero, days: make(map[int]struct{})}
			groups[s.PharmacyID] = g
		}
		day := s.Date.Day()
		g.total = g.total.Add(s.Amount)
		g.days[day] = struct{}{}
		if day > g.lastDay {
			g.lastDay = day
		}
	}

	proj := domain.Projection{
		Year:               year,
		Month:              month,
		DaysInMonth:        daysInMonth,
		Actual:             decimal.Zero,
		ProjectedRemainder: decimal.Zero,
		ProjectedTotal:     decimal.Zero,
		ByPharmacy:         make([]domain.PharmacyProjection, 0, len(groups)),
	}

	for _, g := range groups {
		days := decimal.NewFromInt(int64(len(g.days)))
		remaining := daysInMonth - g.lastDay
		if remaining < 0 {
			remaining = 0
		}
		// total*remaining/days keeps a single rounding step.
		remainder := g.total.Mul(decimal.NewFromInt(int64(remaining))).DivRound(days, 2)

		proj.ByPharmacy = append(proj.ByPharmacy, domain.PharmacyProjection{
			PharmacyID:         g.id,
			PharmacyName:       g.name,
			Actual:             g.total,
			DaysRecorded:       len(g.days),
			LastRecordedDay:    g.lastDay,
			DailyAverage:       g.total.DivRound(days, 2),
			RemainingDays:      remaining,
			ProjectedRemainder: remainder,
			ProjectedTotal:     g.total.Add(remainder),
		})
		proj.Actual = proj.Actual.Add(g.total)
		proj.ProjectedRemainder = proj.ProjectedRemainder.Add(remainder)
	}
	proj.ProjectedTotal = proj.Actual.Add(proj.ProjectedRemainder)

	sort.Slice(proj.ByPharmacy, func(i, j int) bool {
		a, b := proj.ByPharmacy[i], proj.ByPharmacy[j]
		if a.PharmacyName != b.PharmacyName {
			return a.PharmacyName < b.PharmacyName
		}
		return a.PharmacyID < b.PharmacyID
	})
	return proj
}

// ProjectMonth applies f and projects the selected month. It requires both
// year and month to be fixed.
func ProjectMonth(sales []domain.Sale, f domain.RecordFilter) (*domain.Projection, error) {
	if !f.HasYearMonth() {
		return nil, apperrors.ErrProjectionNotApplicable
	}
	p := Project(FilterSales(sales, f), *f.Year, *f.Month)
	return &p, nil
}
