package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/google/uuid"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
	userRepo  portsrepo.UserReader
}

// NewAuditService creates the audit log service. The user reader resolves the
// display name stored with each entry.
func NewAuditService(auditRepo portsrepo.AuditLogRepository, userRepo portsrepo.UserReader, options ...ServiceOption) portssvc.AuditSvcFacade {
	return &auditService{
		BaseService: newBaseService(options...),
		auditRepo:   auditRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) Record(ctx context.Context, userID string, action domain.AuditAction, description string) {
	userName := userID
	if user, err := s.userRepo.FindUserByID(ctx, userID); err == nil {
		userName = user.Name
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to resolve user for audit entry", slog.String("user_id", userID))
	}

	entry := domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		UserID:      userID,
		UserName:    userName,
		Action:      action,
		Description: description,
		CreatedAt:   s.Now(),
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit entry",
			slog.String("user_id", userID),
			slog.String("action", string(action)))
	}
}

func (s *auditService) ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	entries, token, err := s.auditRepo.ListAuditLogs(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs")
		return nil, nil, err
	}
	return entries, token, nil
}

func (s *auditService) SummarizeAuditLogs(ctx context.Context, filter domain.AuditLogFilter) (*domain.AuditSummary, error) {
	summary, err := s.auditRepo.SummarizeAuditLogs(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize audit logs")
		return nil, err
	}
	return summary, nil
}
