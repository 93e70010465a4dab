package dto

import (
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest registers the sales of one pharmacy on one date.
type CreateSaleRequest struct {
	PharmacyID string            `json:"pharmacyID" binding:"required,uuid"`
	Amount     decimal.Decimal   `json:"amount" binding:"required" swaggertype:"string" example:"1250.50"`
	RecordType domain.RecordType `json:"recordType" binding:"required,oneof=daily weekly monthly"`
	Date       string            `json:"date" binding:"required,datetime=2006-01-02,notfuture" example:"2025-03-14"`
}

// BulkSaleEntry is one pharmacy's amount within a bulk registration.
type BulkSaleEntry struct {
	PharmacyID string          `json:"pharmacyID" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"980.00"`
}

// BulkSalesRequest registers several pharmacies at once with a shared date
// and record type. Entries with a non-positive amount are skipped.
type BulkSalesRequest struct {
	RecordType domain.RecordType `json:"recordType" binding:"required,oneof=daily weekly monthly"`
	Date       string            `json:"date" binding:"required,datetime=2006-01-02,notfuture"`
	Entries    []BulkSaleEntry   `json:"entries" binding:"required,min=1,dive"`
}

// UpdateSaleRequest uses pointers to distinguish omitted fields.
type UpdateSaleRequest struct {
	PharmacyID *string            `json:"pharmacyID" binding:"omitempty,uuid"`
	Amount     *decimal.Decimal   `json:"amount" swaggertype:"string"`
	RecordType *domain.RecordType `json:"recordType" binding:"omitempty,oneof=daily weekly monthly"`
	Date       *string            `json:"date" binding:"omitempty,datetime=2006-01-02,notfuture"`
}

type SaleResponse struct {
	SaleID          string            `json:"saleID"`
	PharmacyID      string            `json:"pharmacyID"`
	PharmacyName    string            `json:"pharmacyName"`
	Amount          decimal.Decimal   `json:"amount" swaggertype:"string"`
	RecordType      domain.RecordType `json:"recordType"`
	RecordTypeLabel string            `json:"recordTypeLabel"`
	Date            string            `json:"date"`
	CreatedBy       string            `json:"createdBy"`
}

// ListSalesResponse is one page of sales plus the total of every matching row.
type ListSalesResponse struct {
	Sales     []SaleResponse  `json:"sales"`
	Total     decimal.Decimal `json:"total" swaggertype:"string"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// BulkSalesResponse reports what a bulk registration stored.
type BulkSalesResponse struct {
	Created int             `json:"created"`
	Skipped int             `json:"skipped"`
	Total   decimal.Decimal `json:"total" swaggertype:"string"`
	Sales   []SaleResponse  `json:"sales"`
}

func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:          s.SaleID,
		PharmacyID:      s.PharmacyID,
		PharmacyName:    s.PharmacyName,
		Amount:          s.Amount,
		RecordType:      s.RecordType,
		RecordTypeLabel: locale.RecordTypeLabel(s.RecordType),
		Date:            s.Date.Format(DateLayout),
		CreatedBy:       s.CreatedBy,
	}
}

func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}
