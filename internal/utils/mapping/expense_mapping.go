package mapping

import (
	"database/sql"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID:    d.ExpenseID,
		PharmacyID:   d.PharmacyID,
		PharmacyName: d.PharmacyName,
		Amount:       d.Amount,
		ExpenseDate:  domain.DateOnly(d.Date),
		ExpenseType:  string(d.ExpenseType),
		Category:     string(d.Category),
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.Folio != nil {
		m.Folio = sql.NullString{String: *d.Folio, Valid: true}
	}
	return m
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:    m.ExpenseID,
		PharmacyID:   m.PharmacyID,
		PharmacyName: m.PharmacyName,
		Amount:       m.Amount,
		Date:         domain.DateOnly(m.ExpenseDate),
		ExpenseType:  domain.ExpenseType(m.ExpenseType),
		Category:     domain.ExpenseCategory(m.Category),
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.Folio.Valid {
		folio := m.Folio.String
		d.Folio = &folio
	}
	return d
}

func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
