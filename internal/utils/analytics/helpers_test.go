package analytics_test

import (
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func sale(pharmacyID, name, amount string, date time.Time) domain.Sale {
	return domain.Sale{
		SaleID:       pharmacyID + date.Format("20060102") + amount,
		PharmacyID:   pharmacyID,
		PharmacyName: name,
		Amount:       dec(amount),
		RecordType:   domain.RecordDaily,
		Date:         date,
	}
}

func expense(pharmacyID, name, amount string, date time.Time, t domain.ExpenseType, c domain.ExpenseCategory) domain.Expense {
	return domain.Expense{
		ExpenseID:    pharmacyID + date.Format("20060102") + amount,
		PharmacyID:   pharmacyID,
		PharmacyName: name,
		Amount:       dec(amount),
		Date:         date,
		ExpenseType:  t,
		Category:     c,
	}
}
