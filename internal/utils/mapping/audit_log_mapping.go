package mapping

import (
	"database/sql"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/models"
)

func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditLogID:  d.AuditLogID,
		UserID:      sql.NullString{String: d.UserID, Valid: d.UserID != ""},
		UserName:    d.UserName,
		Action:      string(d.Action),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditLogID:  m.AuditLogID,
		UserID:      m.UserID.String,
		UserName:    m.UserName,
		Action:      domain.AuditAction(m.Action),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	ds := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
