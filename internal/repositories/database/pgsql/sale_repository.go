package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/pharmacy_dashboard/internal/models"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleSelect = `
	SELECT s.sale_id, s.pharmacy_id, p.name, s.amount, s.record_type, s.sale_date,
	       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
	FROM sales s
	JOIN pharmacies p ON p.pharmacy_id = s.pharmacy_id
`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(&m.SaleID, &m.PharmacyID, &m.PharmacyName, &m.Amount, &m.RecordType, &m.SaleDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func collectSales(rows pgx.Rows) ([]models.Sale, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
}

var saleKeyset = keysetColumns{Date: "s.sale_date", CreatedAt: "s.created_at", ID: "s.sale_id"}

func saleConditions(q domain.RecordQuery) *whereBuilder {
	w := &whereBuilder{}
	w.addRecordFilter(q.Filter, "s.pharmacy_id", "s.sale_date")
	if q.Search != "" {
		w.add(`p.name ILIKE ? ESCAPE '\'`, containsPattern(q.Search))
	}
	return w
}

const insertSaleQuery = `
	INSERT INTO sales (sale_id, pharmacy_id, amount, record_type, sale_date,
	                   created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

func insertSaleArgs(m models.Sale) []interface{} {
	return []interface{}{m.SaleID, m.PharmacyID, m.Amount, m.RecordType, m.SaleDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy}
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	if _, err := r.Pool.Exec(ctx, insertSaleQuery, insertSaleArgs(m)...); err != nil {
		return translateWriteError(err, "failed to save sale "+m.SaleID)
	}
	return nil
}

func (r *PgxSaleRepository) SaveSales(ctx context.Context, sales []domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, s := range sales {
		batch.Queue(insertSaleQuery, insertSaleArgs(mapping.ToModelSale(s))...)
	}
	br := tx.SendBatch(ctx, batch)
	for i := range sales {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateWriteError(err, fmt.Sprintf("failed to save sale %d of %d", i+1, len(sales)))
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close sale batch: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales
		SET pharmacy_id = $2, amount = $3, record_type = $4, sale_date = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE sale_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.SaleID, m.PharmacyID, m.Amount, m.RecordType, m.SaleDate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to update sale "+m.SaleID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	m, err := scanSale(r.Pool.QueryRow(ctx, saleSelect+` WHERE s.sale_id = $1;`, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	d := mapping.ToDomainSale(m)
	return &d, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, q domain.RecordQuery) ([]domain.Sale, *string, error) {
	limit := pageSize(q.Limit)
	w := saleConditions(q)

	if q.NextToken != nil && *q.NextToken != "" {
		cursor, err := decodeCursor(*q.NextToken)
		if err != nil {
			return nil, nil, err
		}
		w.addBefore(saleKeyset, cursor)
	}

	// One extra row tells us whether another page exists.
	query := saleSelect + w.sql() + saleKeyset.orderBy() + ` LIMIT ` + w.next()
	args := append(w.args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	ms, err := collectSales(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan sales: %w", err)
	}

	var nextToken *string
	if len(ms) > limit {
		last := ms[limit-1]
		nextToken = saleKeyset.cursor(last.SaleDate, last.CreatedAt, last.SaleID)
		ms = ms[:limit]
	}
	return mapping.ToDomainSaleSlice(ms), nextToken, nil
}

func (r *PgxSaleRepository) SumSales(ctx context.Context, q domain.RecordQuery) (decimal.Decimal, error) {
	w := saleConditions(q)
	query := `
		SELECT COALESCE(SUM(s.amount), 0)
		FROM sales s
		JOIN pharmacies p ON p.pharmacy_id = s.pharmacy_id
	` + w.sql()

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales: %w", err)
	}
	return total, nil
}

func (r *PgxSaleRepository) ListSalesForAnalysis(ctx context.Context, pharmacyID *string) ([]domain.Sale, error) {
	w := &whereBuilder{}
	if pharmacyID != nil {
		w.add("s.pharmacy_id = ?", *pharmacyID)
	}
	rows, err := r.Pool.Query(ctx, saleSelect+w.sql()+` ORDER BY s.sale_date, s.created_at, s.sale_id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales for analysis: %w", err)
	}
	defer rows.Close()

	ms, err := collectSales(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales for analysis: %w", err)
	}
	return mapping.ToDomainSaleSlice(ms), nil
}
