package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExpenseType separates recurring costs from one-off ones.
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "fixed"
	ExpenseVariable ExpenseType = "variable"
)

func (t ExpenseType) IsValid() bool {
	return t == ExpenseFixed || t == ExpenseVariable
}

// ExpenseCategory is one of the fixed expense classification labels.
type ExpenseCategory string

const (
	CategoryRent        ExpenseCategory = "Renta"
	CategoryUtilities   ExpenseCategory = "Servicios"
	CategoryPayroll     ExpenseCategory = "Sueldos"
	CategorySupplies    ExpenseCategory = "Insumos"
	CategoryMaintenance ExpenseCategory = "Mantenimiento"
	CategoryTransport   ExpenseCategory = "Transporte"
	CategoryTaxes       ExpenseCategory = "Impuestos"
	CategoryMerchandise ExpenseCategory = "Mercancia"
	CategoryOther       ExpenseCategory = "Otro"
)

const (
	maxDescriptionLength = 500
	maxFolioLength       = 50
)

// ExpenseCategories lists the accepted categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryRent,
	CategoryUtilities,
	CategoryPayroll,
	CategorySupplies,
	CategoryMaintenance,
	CategoryTransport,
	CategoryTaxes,
	CategoryMerchandise,
	CategoryOther,
}

func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// RequiresFolio reports whether entries in this category must carry an invoice folio.
func (c ExpenseCategory) RequiresFolio() bool {
	return c == CategoryMerchandise
}

// Expense is a cost entry attributed to one pharmacy on one date.
type Expense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	PharmacyID   string          `json:"pharmacyID"`
	PharmacyName string          `json:"pharmacyName"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	ExpenseType  ExpenseType     `json:"expenseType"`
	Category     ExpenseCategory `json:"category"`
	Description  string          `json:"description"`
	Folio        *string         `json:"folio,omitempty"` // Unique per pharmacy when set
	AuditFields
}

// Normalize trims free-text fields and drops an empty folio.
func (e *Expense) Normalize() {
	e.Description = strings.TrimSpace(e.Description)
	if e.Folio != nil {
		f := strings.TrimSpace(*e.Folio)
		if f == "" {
			e.Folio = nil
		} else {
			e.Folio = &f
		}
	}
}

// Validate checks an expense before it is persisted. today is the caller's current date.
func (e Expense) Validate(today time.Time) error {
	if e.PharmacyID == "" {
		return fmt.Errorf("%w: pharmacy is required", apperrors.ErrValidation)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: expense amount must be greater than zero", apperrors.ErrValidation)
	}
	if !e.ExpenseType.IsValid() {
		return fmt.Errorf("%w: unknown expense type %q", apperrors.ErrValidation, e.ExpenseType)
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, e.Category)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: expense date is required", apperrors.ErrValidation)
	}
	if DateOnly(e.Date).After(DateOnly(today)) {
		return fmt.Errorf("%w: expense date cannot be in the future", apperrors.ErrValidation)
	}
	if len(e.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", apperrors.ErrValidation, maxDescriptionLength)
	}
	if e.Folio != nil && len(*e.Folio) > maxFolioLength {
		return fmt.Errorf("%w: folio exceeds %d characters", apperrors.ErrValidation, maxFolioLength)
	}
	if e.Category.RequiresFolio() && (e.Folio == nil || *e.Folio == "") {
		return fmt.Errorf("%w: folio is required for %s expenses", apperrors.ErrValidation, e.Category)
	}
	return nil
}
