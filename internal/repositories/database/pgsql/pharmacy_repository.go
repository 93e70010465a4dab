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
)

type PgxPharmacyRepository struct {
	BaseRepository
}

func newPgxPharmacyRepository(pool *pgxpool.Pool) portsrepo.PharmacyRepositoryFacade {
	return &PgxPharmacyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PharmacyRepositoryFacade = (*PgxPharmacyRepository)(nil)

const pharmacyColumns = `pharmacy_id, name, city, created_at, created_by, last_updated_at, last_updated_by`

func scanPharmacy(row pgx.Row) (models.Pharmacy, error) {
	var m models.Pharmacy
	err := row.Scan(&m.PharmacyID, &m.Name, &m.City, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxPharmacyRepository) SavePharmacy(ctx context.Context, pharmacy domain.Pharmacy) error {
	m := mapping.ToModelPharmacy(pharmacy)
	query := `
		INSERT INTO pharmacies (` + pharmacyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.PharmacyID, m.Name, m.City, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to save pharmacy "+m.PharmacyID)
	}
	return nil
}

func (r *PgxPharmacyRepository) UpdatePharmacy(ctx context.Context, pharmacy domain.Pharmacy) error {
	m := mapping.ToModelPharmacy(pharmacy)
	query := `
		UPDATE pharmacies
		SET name = $2, city = $3, last_updated_at = $4, last_updated_by = $5
		WHERE pharmacy_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.PharmacyID, m.Name, m.City, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "failed to update pharmacy "+m.PharmacyID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPharmacyRepository) DeletePharmacy(ctx context.Context, pharmacyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM pharmacies WHERE pharmacy_id = $1;`, pharmacyID)
	if err != nil {
		return translateWriteError(err, "failed to delete pharmacy "+pharmacyID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPharmacyRepository) FindPharmacyByID(ctx context.Context, pharmacyID string) (*domain.Pharmacy, error) {
	query := `SELECT ` + pharmacyColumns + ` FROM pharmacies WHERE pharmacy_id = $1;`
	m, err := scanPharmacy(r.Pool.QueryRow(ctx, query, pharmacyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pharmacy %s: %w", pharmacyID, err)
	}
	d := mapping.ToDomainPharmacy(m)
	return &d, nil
}

func (r *PgxPharmacyRepository) ListPharmacies(ctx context.Context, limit int, offset int) ([]domain.Pharmacy, error) {
	query := `SELECT ` + pharmacyColumns + ` FROM pharmacies ORDER BY name, pharmacy_id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pharmacies: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Pharmacy, error) {
		return scanPharmacy(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pharmacies: %w", err)
	}
	return mapping.ToDomainPharmacySlice(ms), nil
}

func (r *PgxPharmacyRepository) CountPharmacyReferences(ctx context.Context, pharmacyID string) (int, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM sales WHERE pharmacy_id = $1)
		     + (SELECT COUNT(*) FROM expenses WHERE pharmacy_id = $1);
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, pharmacyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count references for pharmacy %s: %w", pharmacyID, err)
	}
	return count, nil
}
