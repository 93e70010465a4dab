package services

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	// ListSales returns one page of matching sales and the total of all matches.
	ListSales(ctx context.Context, query domain.RecordQuery) (*dto.ListSalesResponse, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error)
	// CreateSalesBulk stores every entry with a positive amount in one
	// transaction and reports how many entries were skipped.
	CreateSalesBulk(ctx context.Context, req dto.BulkSalesRequest, creatorUserID string) ([]domain.Sale, int, error)
	UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, userID string) (*domain.Sale, error)
	DeleteSale(ctx context.Context, saleID string, userID string) error
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
