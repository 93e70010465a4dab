package repositories

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// AuditLogRepository stores and queries the append-only audit log.
type AuditLogRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs returns entries newest first and the next page token.
	ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error)

	SummarizeAuditLogs(ctx context.Context, filter domain.AuditLogFilter) (*domain.AuditSummary, error)
}
