package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table joined with the pharmacy name.
type Expense struct {
	ExpenseID    string          `db:"expense_id"`
	PharmacyID   string          `db:"pharmacy_id"`
	PharmacyName string          `db:"pharmacy_name"`
	Amount       decimal.Decimal `db:"amount"`
	ExpenseDate  time.Time       `db:"expense_date"`
	ExpenseType  string          `db:"expense_type"`
	Category     string          `db:"category"`
	Description  string          `db:"description"`
	Folio        sql.NullString  `db:"folio"`
	AuditFields
}
