package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// translateWriteError maps constraint violations onto domain errors.
func translateWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
		case "23503": // foreign_key_violation
			if strings.Contains(strings.ToLower(pgErr.Message), "delete") || strings.Contains(pgErr.Detail, "still referenced") {
				return fmt.Errorf("%s: %w", what, apperrors.ErrInUse)
			}
			return fmt.Errorf("%s: %w: referenced record does not exist", what, apperrors.ErrValidation)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", what, apperrors.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

// whereBuilder accumulates SQL conditions with positional arguments.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

// add appends a condition; each "?" in cond is replaced with the next placeholder.
func (w *whereBuilder) add(cond string, args ...interface{}) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.clauses = append(w.clauses, cond)
}

func (w *whereBuilder) next() string {
	return fmt.Sprintf("$%d", len(w.args)+1)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

// addRecordFilter adds the pharmacy, year and month conditions of f against
// the given pharmacy and date columns.
func (w *whereBuilder) addRecordFilter(f domain.RecordFilter, pharmacyCol, dateCol string) {
	if f.PharmacyID != nil {
		w.add(pharmacyCol+" = ?", *f.PharmacyID)
	}
	if f.Year != nil {
		w.add("EXTRACT(YEAR FROM "+dateCol+")::int = ?", *f.Year)
	}
	if f.Month != nil {
		w.add("EXTRACT(MONTH FROM "+dateCol+")::int = ?", *f.Month)
	}
}

// keysetColumns are the sort columns of a newest-first listing. Date may be
// empty when rows are ordered by creation time alone; ID must be unique.
type keysetColumns struct {
	Date      string
	CreatedAt string
	ID        string
}

func (k keysetColumns) cols() []string {
	if k.Date == "" {
		return []string{k.CreatedAt, k.ID}
	}
	return []string{k.Date, k.CreatedAt, k.ID}
}

// orderBy returns the ORDER BY clause matching addBefore.
func (k keysetColumns) orderBy() string {
	cols := k.cols()
	for i := range cols {
		cols[i] += " DESC"
	}
	return " ORDER BY " + strings.Join(cols, ", ")
}

// cursor builds the nextToken for a row with the given sort values.
func (k keysetColumns) cursor(date, createdAt time.Time, id string) *string {
	c := pagination.Cursor{CreatedAt: createdAt, ID: id}
	if k.Date != "" {
		c.RecordDate = date
	}
	token := c.Encode()
	return &token
}

// addBefore restricts the listing to rows sorting after the cursor c.
func (w *whereBuilder) addBefore(k keysetColumns, c pagination.Cursor) {
	if k.Date == "" {
		w.add("("+strings.Join(k.cols(), ", ")+") < (?, ?::uuid)", c.CreatedAt, c.ID)
		return
	}
	w.add("("+strings.Join(k.cols(), ", ")+") < (?, ?, ?::uuid)", c.RecordDate, c.CreatedAt, c.ID)
}

// decodeCursor parses a client supplied nextToken.
func decodeCursor(token string) (pagination.Cursor, error) {
	c, err := pagination.Decode(token)
	if err != nil {
		return pagination.Cursor{}, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", err)
	}
	return c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into an ILIKE pattern matching it
// literally anywhere in the value. Use with ESCAPE '\'.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
