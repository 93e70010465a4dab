package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	AuditRecorder portssvc.AuditRecorderSvc
	Clock         func() time.Time
}

// ServiceOption is a functional option for configuring the shared service dependencies
type ServiceOption func(*BaseService)

// WithAuditRecorder makes mutating operations write audit log entries.
func WithAuditRecorder(recorder portssvc.AuditRecorderSvc) ServiceOption {
	return func(s *BaseService) {
		s.AuditRecorder = recorder
	}
}

// WithClock overrides the time source used for audit fields and date checks.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	b := BaseService{}
	for _, option := range options {
		option(&b)
	}
	return b
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// RecordAudit writes an audit entry when a recorder is configured.
func (s *BaseService) RecordAudit(ctx context.Context, userID string, action domain.AuditAction, description string) {
	if s.AuditRecorder == nil {
		return
	}
	s.AuditRecorder.Record(ctx, userID, action, description)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func auditFields(now time.Time, userID string) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
