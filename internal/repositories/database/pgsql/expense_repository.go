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

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseSelect = `
	SELECT e.expense_id, e.pharmacy_id, p.name, e.amount, e.expense_date, e.expense_type,
	       e.category, e.description, e.folio,
	       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
	FROM expenses e
	JOIN pharmacies p ON p.pharmacy_id = e.pharmacy_id
`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(&m.ExpenseID, &m.PharmacyID, &m.PharmacyName, &m.Amount, &m.ExpenseDate, &m.ExpenseType,
		&m.Category, &m.Description, &m.Folio,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func collectExpenses(rows pgx.Rows) ([]models.Expense, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
}

var expenseKeyset = keysetColumns{Date: "e.expense_date", CreatedAt: "e.created_at", ID: "e.expense_id"}

func expenseConditions(q domain.RecordQuery) *whereBuilder {
	w := &whereBuilder{}
	w.addRecordFilter(q.Filter, "e.pharmacy_id", "e.expense_date")
	if q.Category != "" {
		w.add("e.category = ?", string(q.Category))
	}
	if q.Search != "" {
		pattern := containsPattern(q.Search)
		w.add(`(e.description ILIKE ? ESCAPE '\' OR e.folio ILIKE ? ESCAPE '\')`, pattern, pattern)
	}
	return w
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, pharmacy_id, amount, expense_date, expense_type, category,
		                      description, folio, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query, m.ExpenseID, m.PharmacyID, m.Amount, m.ExpenseDate, m.ExpenseType, m.Category,
		m.Description, m.Folio, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to save expense "+m.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET pharmacy_id = $2, amount = $3, expense_date = $4, expense_type = $5, category = $6,
		    description = $7, folio = $8, last_updated_at = $9, last_updated_by = $10
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ExpenseID, m.PharmacyID, m.Amount, m.ExpenseDate, m.ExpenseType, m.Category,
		m.Description, m.Folio, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to update expense "+m.ExpenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	m, err := scanExpense(r.Pool.QueryRow(ctx, expenseSelect+` WHERE e.expense_id = $1;`, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, q domain.RecordQuery) ([]domain.Expense, *string, error) {
	limit := pageSize(q.Limit)
	w := expenseConditions(q)

	if q.NextToken != nil && *q.NextToken != "" {
		cursor, err := decodeCursor(*q.NextToken)
		if err != nil {
			return nil, nil, err
		}
		w.addBefore(expenseKeyset, cursor)
	}

	query := expenseSelect + w.sql() + expenseKeyset.orderBy() + ` LIMIT ` + w.next()
	args := append(w.args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms, err := collectExpenses(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	var nextToken *string
	if len(ms) > limit {
		last := ms[limit-1]
		nextToken = expenseKeyset.cursor(last.ExpenseDate, last.CreatedAt, last.ExpenseID)
		ms = ms[:limit]
	}
	return mapping.ToDomainExpenseSlice(ms), nextToken, nil
}

func (r *PgxExpenseRepository) SumExpenses(ctx context.Context, q domain.RecordQuery) (decimal.Decimal, error) {
	w := expenseConditions(q)
	query := `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN pharmacies p ON p.pharmacy_id = e.pharmacy_id
	` + w.sql()

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *PgxExpenseRepository) ListExpensesForAnalysis(ctx context.Context, pharmacyID *string) ([]domain.Expense, error) {
	w := &whereBuilder{}
	if pharmacyID != nil {
		w.add("e.pharmacy_id = ?", *pharmacyID)
	}
	rows, err := r.Pool.Query(ctx, expenseSelect+w.sql()+` ORDER BY e.expense_date, e.created_at, e.expense_id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for analysis: %w", err)
	}
	defer rows.Close()

	ms, err := collectExpenses(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses for analysis: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) FolioExists(ctx context.Context, pharmacyID, folio, excludeExpenseID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM expenses
			WHERE pharmacy_id = $1 AND folio = $2 AND ($3 = '' OR expense_id::text <> $3)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, pharmacyID, folio, excludeExpenseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check folio %s: %w", folio, err)
	}
	return exists, nil
}
