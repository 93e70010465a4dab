package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/pharmacy_dashboard/internal/models"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

var auditKeyset = keysetColumns{CreatedAt: "created_at", ID: "audit_log_id"}

func auditConditions(f domain.AuditLogFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.UserName != "" {
		w.add("user_name = ?", f.UserName)
	}
	if f.Action != "" {
		w.add("action = ?", string(f.Action))
	}
	if f.Year != nil {
		w.add("EXTRACT(YEAR FROM created_at)::int = ?", *f.Year)
	}
	if f.Month != nil {
		w.add("EXTRACT(MONTH FROM created_at)::int = ?", *f.Month)
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		w.add(`(description ILIKE ? ESCAPE '\' OR user_name ILIKE ? ESCAPE '\')`, pattern, pattern)
	}
	return w
}

func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	query := `
		INSERT INTO audit_logs (audit_log_id, user_id, user_name, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := r.Pool.Exec(ctx, query, m.AuditLogID, m.UserID, m.UserName, m.Action, m.Description, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	limit = pageSize(limit)
	w := auditConditions(filter)
	if nextToken != nil && *nextToken != "" {
		cursor, err := decodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		w.addBefore(auditKeyset, cursor)
	}

	query := `
		SELECT audit_log_id, user_id, user_name, action, description, created_at
		FROM audit_logs
	` + w.sql() + auditKeyset.orderBy() + ` LIMIT ` + w.next()
	args := append(w.args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditLog, error) {
		var m models.AuditLog
		err := row.Scan(&m.AuditLogID, &m.UserID, &m.UserName, &m.Action, &m.Description, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan audit logs: %w", err)
	}

	var token *string
	if len(ms) > limit {
		last := ms[limit-1]
		token = auditKeyset.cursor(time.Time{}, last.CreatedAt, last.AuditLogID)
		ms = ms[:limit]
	}
	return mapping.ToDomainAuditLogSlice(ms), token, nil
}

func (r *PgxAuditLogRepository) SummarizeAuditLogs(ctx context.Context, filter domain.AuditLogFilter) (*domain.AuditSummary, error) {
	w := auditConditions(filter)
	query := `
		SELECT COUNT(*), COUNT(DISTINCT user_name), COUNT(DISTINCT action)
		FROM audit_logs
	` + w.sql()

	var s domain.AuditSummary
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&s.Total, &s.UniqueUsers, &s.DistinctActions); err != nil {
		return nil, fmt.Errorf("failed to summarize audit logs: %w", err)
	}
	return &s, nil
}
