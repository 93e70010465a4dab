package repositories

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale by its ID, including the pharmacy name.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales returns one page of sales ordered by date then creation time,
	// newest first, and the token for the next page when there is one.
	ListSales(ctx context.Context, query domain.RecordQuery) ([]domain.Sale, *string, error)

	// SumSales totals every sale matching the query, ignoring paging.
	SumSales(ctx context.Context, query domain.RecordQuery) (decimal.Decimal, error)

	// ListSalesForAnalysis loads all sales, optionally for a single pharmacy,
	// for in-memory aggregation.
	ListSalesForAnalysis(ctx context.Context, pharmacyID *string) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.Sale) error

	// SaveSales inserts all sales in a single transaction.
	SaveSales(ctx context.Context, sales []domain.Sale) error

	UpdateSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
