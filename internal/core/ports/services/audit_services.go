package services

import (
	"context"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// AuditRecorderSvc appends entries to the audit log.
type AuditRecorderSvc interface {
	// Record stores an entry for userID. Failures are logged, not returned,
	// so that auditing never undoes the operation being audited.
	Record(ctx context.Context, userID string, action domain.AuditAction, description string)
}

// AuditReaderSvc queries the audit log.
type AuditReaderSvc interface {
	ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error)
	SummarizeAuditLogs(ctx context.Context, filter domain.AuditLogFilter) (*domain.AuditSummary, error)
}

// AuditSvcFacade combines the audit log service interfaces
type AuditSvcFacade interface {
	AuditRecorderSvc
	AuditReaderSvc
}
