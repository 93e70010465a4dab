package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RecordType tells how much time a sale entry covers.
type RecordType string

const (
	RecordDaily   RecordType = "daily"
	RecordWeekly  RecordType = "weekly"
	RecordMonthly RecordType = "monthly"
)

// IsValid reports whether r is a known record type.
func (r RecordType) IsValid() bool {
	switch r {
	case RecordDaily, RecordWeekly, RecordMonthly:
		return true
	}
	return false
}

// Sale is a revenue entry attributed to one pharmacy on one date.
type Sale struct {
	SaleID       string          `json:"saleID"`       // Primary Key (UUID)
	PharmacyID   string          `json:"pharmacyID"`   // FK -> pharmacies.pharmacy_id
	PharmacyName string          `json:"pharmacyName"` // Joined for display, not persisted on the row
	Amount       decimal.Decimal `json:"amount"`
	RecordType   RecordType      `json:"recordType"`
	Date         time.Time       `json:"date"` // Calendar date, time part is ignored
	AuditFields
}

// Validate checks a sale before it is persisted. today is the caller's current date.
func (s Sale) Validate(today time.Time) error {
	if s.PharmacyID == "" {
		return fmt.Errorf("%w: pharmacy is required", apperrors.ErrValidation)
	}
	if !s.Amount.IsPositive() {
		return fmt.Errorf("%w: sale amount must be greater than zero", apperrors.ErrValidation)
	}
	if !s.RecordType.IsValid() {
		return fmt.Errorf("%w: unknown record type %q", apperrors.ErrValidation, s.RecordType)
	}
	if s.Date.IsZero() {
		return fmt.Errorf("%w: sale date is required", apperrors.ErrValidation)
	}
	if DateOnly(s.Date).After(DateOnly(today)) {
		return fmt.Errorf("%w: sale date cannot be in the future", apperrors.ErrValidation)
	}
	return nil
}
