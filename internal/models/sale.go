package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table joined with the pharmacy name.
type Sale struct {
	SaleID       string          `db:"sale_id"`
	PharmacyID   string          `db:"pharmacy_id"`
	PharmacyName string          `db:"pharmacy_name"`
	Amount       decimal.Decimal `db:"amount"`
	RecordType   string          `db:"record_type"`
	SaleDate     time.Time       `db:"sale_date"`
	AuditFields
}
